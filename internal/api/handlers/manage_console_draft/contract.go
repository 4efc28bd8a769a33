package manage_console_draft

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ConsoleSession сессия страницы расписания оператора
type ConsoleSession interface {
	OpenDraft(date string, start types.TimeString) error
	UpdateDraft(form domain.BookingDraft) error
	CloseDraft() error
	Submit(ctx context.Context) (*domain.Booking, error)
	Draft() *schedule.DraftView
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
