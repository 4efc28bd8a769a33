package get_week_schedule

import (
	"context"

	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

// WeekScheduleUseCase юзкейс построения недельной сетки занятости
type WeekScheduleUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
