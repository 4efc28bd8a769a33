package get_week_schedule

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// generateTimeSlots генерирует фиксированный каталог слотов дня.
// Слоты идут с шагом slotDuration от часа открытия; слот, который не помещается
// до часа закрытия целиком, не генерируется. Чистая функция от (openHour, closeHour).
func generateTimeSlots(openHour, closeHour, slotDuration int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, (closeHour-openHour)*60/slotDuration)

	for start := openHour * 60; start+slotDuration <= closeHour*60; start += slotDuration {
		slotStart, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		slotEnd, err := types.NewTimeStringFromMinutes(start + slotDuration)
		if err != nil {
			break
		}
		slots = append(slots, domain.TimeSlot{StartTime: slotStart, EndTime: slotEnd})
	}

	return slots
}

// occupantFor ищет бронирование, занимающее слот в указанную дату.
// Дата сравнивается строковым равенством ISO форм, интервалы — полуоткрытые.
// Набор недели по инварианту платформы не содержит пересечений среди
// неотменённых броней, поэтому ожидается не более одного совпадения;
// при нарушении инварианта возвращается первое найденное.
// Отменённые брони тоже попадают на сетку — они рендерятся отдельным статусом.
func occupantFor(date string, slot domain.TimeSlot, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		if slot.Overlaps(b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}

// cellStatus чистое отображение занятости ячейки в состояние отображения
func cellStatus(b *domain.Booking) CellStatus {
	if b == nil {
		return CellFree
	}
	switch b.Status {
	case domain.StatusPending:
		return CellPending
	case domain.StatusConfirmed:
		return CellConfirmed
	case domain.StatusCompleted:
		return CellCompleted
	case domain.StatusCancelled:
		return CellCancelled
	default:
		return CellFree
	}
}

// buildDay собирает колонку сетки для одного календарного дня
func buildDay(date string, slots []domain.TimeSlot, bookings []*domain.Booking) DaySchedule {
	day := DaySchedule{
		Date:  date,
		Cells: make([]Cell, 0, len(slots)),
	}

	for _, slot := range slots {
		booking := occupantFor(date, slot, bookings)
		day.Cells = append(day.Cells, Cell{
			Slot:    slot,
			Status:  cellStatus(booking),
			Booking: booking,
			Leading: slot.IsLeadingFor(booking),
		})
	}

	return day
}
