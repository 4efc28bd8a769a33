package update_console_selection

import (
	"context"
	"time"
)

// ConsoleSession сессия страницы расписания оператора
type ConsoleSession interface {
	SelectCourtType(ctx context.Context, typeID int64) error
	SelectCourt(ctx context.Context, courtID int64) error
	SelectDate(ctx context.Context, date time.Time) error
	NextWeek(ctx context.Context) error
	PrevWeek(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
