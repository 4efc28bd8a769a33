package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking каноническая запись бронирования после нормализации ответа платформы.
// Дата и время хранятся строками в канонических форматах ("YYYY-MM-DD", "HH:MM"),
// сравнение лексикографическое, без привязки к таймзоне.
type Booking struct {
	ID            int64
	CourtID       int64
	Date          string // "YYYY-MM-DD"
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus
	PaymentStatus PaymentStatus
	TotalAmount   float64
	Notes         string

	// Идентичность клиента после разрешения цепочки приоритетов (нормализация)
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still holds its time span
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Span returns the booking's half-open [start, end) interval as a TimeSlot.
func (b *Booking) Span() TimeSlot {
	return TimeSlot{StartTime: b.StartTime, EndTime: b.EndTime}
}
