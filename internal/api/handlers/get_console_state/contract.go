package get_console_state

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

// ConsoleSession сессия страницы расписания оператора
type ConsoleSession interface {
	Initialized() bool
	Init(ctx context.Context) error
	CourtTypes() []domain.CourtType
	FilteredCourts() []domain.Court
	SelectedCourtType() int64
	SelectedCourt() int64
	Week() domain.WeekWindow
	Schedule() *getWeekSchedule.Response
	Draft() *schedule.DraftView
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
