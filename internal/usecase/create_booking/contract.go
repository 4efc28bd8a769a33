package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

// CourtServiceClient интерфейс клиента внешней платформы бронирования
type CourtServiceClient interface {
	CreateBooking(ctx context.Context, payload *courtservice.CreateBookingRequest, idempotencyKey string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
