package courtservice

import "encoding/json"

// CourtTypeDTO тип корта из CourtService
type CourtTypeDTO struct {
	TypeID      int64   `json:"type_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CourtDTO корт из CourtService
type CourtDTO struct {
	CourtID    int64   `json:"court_id"`
	Name       string  `json:"name"`
	TypeID     int64   `json:"type_id"`
	TypeName   string  `json:"type_name"`
	VenueName  string  `json:"venue_name"`
	HourlyRate float64 `json:"hourly_rate"`
	Status     string  `json:"status"`
}

// LinkedUser привязанный аккаунт клиента в записи бронирования
type LinkedUser struct {
	UserID   int64   `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Fullname *string `json:"fullname,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// RawBooking сырая запись бронирования из CourtService.
// Форма ответа неоднородная: часть полей опциональна, идентичность клиента
// может прийти и свободным текстом, и через привязанный аккаунт.
type RawBooking struct {
	BookingID     int64       `json:"booking_id"`
	CourtID       int64       `json:"court_id"`
	Date          string      `json:"date"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	Status        string      `json:"status"`
	PaymentStatus *string     `json:"payment_status,omitempty"`
	TotalAmount   *float64    `json:"total_amount,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	CustomerName  *string     `json:"customer_name,omitempty"`
	CustomerPhone *string     `json:"customer_phone,omitempty"`
	CustomerEmail *string     `json:"customer_email,omitempty"`
	User          *LinkedUser `json:"user,omitempty"`
}

// CreateBookingRequest payload создания бронирования (имена полей — контракт платформы)
type CreateBookingRequest struct {
	CourtID       int64  `json:"court_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	RenterName    string `json:"renter_name"`
	RenterPhone   string `json:"renter_phone"`
	RenterEmail   string `json:"renter_email"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// ErrorResponse модель ошибки CourtService.
// Поле message приходит либо строкой, либо списком строк.
type ErrorResponse struct {
	Message MessageList `json:"message"`
}

// MessageList декодирует message вида "text" или ["a", "b"]
type MessageList []string

// UnmarshalJSON implements json.Unmarshaler.
func (m *MessageList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = MessageList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = MessageList(many)
	return nil
}
