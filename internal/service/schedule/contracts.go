package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

// CourtCatalogClient интерфейс клиента платформы для начальной загрузки каталога
type CourtCatalogClient interface {
	ListCourtTypes(ctx context.Context) ([]domain.CourtType, error)
	ListCourts(ctx context.Context) ([]domain.Court, error)
}

// WeekScheduleUseCase интерфейс use case недельного расписания
type WeekScheduleUseCase interface {
	Execute(ctx context.Context, req *getWeekSchedule.Request) (*getWeekSchedule.Response, error)
}

// CreateBookingUseCase интерфейс use case быстрого бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
