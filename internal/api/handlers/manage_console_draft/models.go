package manage_console_draft

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

// OpenDraftRequest модель открытия черновика на пустом слоте
type OpenDraftRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// UpdateDraftRequest модель формы черновика
type UpdateDraftRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// DraftResponse снимок черновика после операции
type DraftResponse struct {
	CourtID       int64  `json:"court_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Submitting    bool   `json:"submitting"`
	LastError     string `json:"last_error,omitempty"`
}

// BookingResponse модель созданного бронирования
type BookingResponse struct {
	BookingID     int64   `json:"booking_id"`
	CourtID       int64   `json:"court_id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TotalAmount   float64 `json:"total_amount"`
	CustomerName  string  `json:"customer_name"`
}

func toForm(req UpdateDraftRequest) domain.BookingDraft {
	return domain.BookingDraft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
	}
}

func toDraftResponse(draft *schedule.DraftView) DraftResponse {
	return DraftResponse{
		CourtID:       draft.Target.CourtID,
		Date:          draft.Target.Date,
		StartTime:     draft.Target.StartTime.String(),
		EndTime:       draft.Target.EndTime.String(),
		CustomerName:  draft.Form.CustomerName,
		CustomerPhone: draft.Form.CustomerPhone,
		CustomerEmail: draft.Form.CustomerEmail,
		Notes:         draft.Form.Notes,
		Submitting:    draft.Submitting,
		LastError:     draft.LastError,
	}
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.ID,
		CourtID:       b.CourtID,
		Date:          b.Date,
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
		CustomerName:  b.CustomerName,
	}
}
