package create_booking

import (
	"context"

	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingUseCase юзкейс быстрого бронирования пустого слота
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
