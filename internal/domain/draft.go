package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// SlotRef целевой слот нового бронирования: корт, дата и интервал
type SlotRef struct {
	CourtID   int64
	Date      string // "YYYY-MM-DD"
	StartTime types.TimeString
	EndTime   types.TimeString
}

// BookingDraft транзиентное состояние формы быстрого бронирования.
// Существует только между кликом по пустому слоту и отправкой/отменой,
// после любого исхода отбрасывается.
type BookingDraft struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}
