package get_week_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CourtServiceClient интерфейс клиента внешней платформы бронирования
type CourtServiceClient interface {
	ListBookings(ctx context.Context, courtID int64, dateFrom, dateTo string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
