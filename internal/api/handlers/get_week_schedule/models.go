package get_week_schedule

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

// SlotResponse слот сетки (строка)
type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BookingResponse карточка бронирования в занятой ячейке
type BookingResponse struct {
	BookingID     int64   `json:"booking_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TotalAmount   float64 `json:"total_amount"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// CellResponse ячейка сетки: слот дня и его занятость
type CellResponse struct {
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Status    string           `json:"status"`
	Leading   bool             `json:"leading,omitempty"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

// DayResponse колонка сетки: один календарный день
type DayResponse struct {
	Date  string         `json:"date"`
	Cells []CellResponse `json:"cells"`
}

// Response недельная сетка занятости корта
type Response struct {
	CourtID   int64          `json:"court_id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Slots     []SlotResponse `json:"slots"`
	Days      []DayResponse  `json:"days"`
}

// NewResponse сериализует недельную сетку use case в модель ответа.
// Экспортируется: консольный снимок состояния отдает сетку в той же форме.
func NewResponse(res *usecase.Response) Response {
	slots := make([]SlotResponse, 0, len(res.Slots))
	for _, s := range res.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	days := make([]DayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		cells := make([]CellResponse, 0, len(d.Cells))
		for _, c := range d.Cells {
			cells = append(cells, CellResponse{
				StartTime: c.Slot.StartTime.String(),
				EndTime:   c.Slot.EndTime.String(),
				Status:    string(c.Status),
				Leading:   c.Leading,
				Booking:   toBookingResponse(c.Booking),
			})
		}
		days = append(days, DayResponse{Date: d.Date, Cells: cells})
	}

	return Response{
		CourtID:   res.CourtID,
		StartDate: res.Week.StartDate(),
		EndDate:   res.Week.EndDate(),
		Slots:     slots,
		Days:      days,
	}
}

func toBookingResponse(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		BookingID:     b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Notes:         b.Notes,
	}
}
