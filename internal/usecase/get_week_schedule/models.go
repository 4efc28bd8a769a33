package get_week_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса недельного расписания корта
type Request struct {
	CourtID int64     // ID корта
	Anchor  time.Time // Опорная дата; показывается неделя, содержащая её
}

// CellStatus состояние ячейки сетки для отображения
type CellStatus string

const (
	CellFree      CellStatus = "free"
	CellPending   CellStatus = "pending"
	CellConfirmed CellStatus = "confirmed"
	CellCompleted CellStatus = "completed"
	CellCancelled CellStatus = "cancelled"
)

// Cell одна ячейка сетки: слот конкретного дня и его занятость
type Cell struct {
	Slot    domain.TimeSlot
	Status  CellStatus
	Booking *domain.Booking // nil для свободной ячейки
	Leading bool            // true только для первого слота брони (ячейка с карточкой)
}

// DaySchedule колонка сетки: один календарный день
type DaySchedule struct {
	Date  string // "YYYY-MM-DD"
	Cells []Cell
}

// Response недельная сетка занятости
type Response struct {
	CourtID  int64
	Week     domain.WeekWindow
	Slots    []domain.TimeSlot // каталог слотов дня (строки сетки)
	Days     [7]DaySchedule    // колонки Пн..Вс
	Bookings []*domain.Booking // нормализованный набор недели
}

// CellAt возвращает ячейку для даты и времени начала слота, либо nil
func (r *Response) CellAt(date string, start types.TimeString) *Cell {
	for d := range r.Days {
		if r.Days[d].Date != date {
			continue
		}
		for i := range r.Days[d].Cells {
			if r.Days[d].Cells[i].Slot.StartTime == start {
				return &r.Days[d].Cells[i]
			}
		}
	}
	return nil
}
