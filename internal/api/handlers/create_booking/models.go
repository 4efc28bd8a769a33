package create_booking

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateBookingRequest модель запроса быстрого бронирования
type CreateBookingRequest struct {
	CourtID       int64  `json:"court_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`

	// IdempotencyKey необязательный ключ; повтор того же запроса не создаёт дубль
	IdempotencyKey string `json:"idempotency_key,omitempty"`
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
	CustomerPhone string  `json:"customer_phone,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

func toUseCaseRequest(req CreateBookingRequest) *usecase.Request {
	return &usecase.Request{
		Target: domain.SlotRef{
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartTime: types.TimeString(req.StartTime),
			EndTime:   types.TimeString(req.EndTime),
		},
		Draft: domain.BookingDraft{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Notes:         req.Notes,
		},
		IdempotencyKey: req.IdempotencyKey,
	}
}

func toResponse(b *domain.Booking) BookingResponse {
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
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Notes:         b.Notes,
	}
}
