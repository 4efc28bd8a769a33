package get_court_types

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CourtCatalogClient клиент каталога кортов внешней платформы
type CourtCatalogClient interface {
	ListCourtTypes(ctx context.Context) ([]domain.CourtType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
