package domain

// DateFormat канонический формат дат сетки (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Default schedule grid geometry (reference deployment: hourly slots 06:00-22:00)
const (
	DefaultOpenHour            = 6
	DefaultCloseHour           = 22
	DefaultSlotDurationMinutes = 60
)

// Quick-booking defaults
const (
	// GuestCustomerName подставляется, когда ни привязанный аккаунт,
	// ни свободное поле не дали имени клиента
	GuestCustomerName = "Khách hàng"

	// GuestCustomerEmail подставляется при пустом email в форме быстрого бронирования
	GuestCustomerEmail = "guest@example.com"

	// PaymentMethodCash единственный способ оплаты, поддерживаемый быстрым бронированием
	PaymentMethodCash = "cash"
)

// CourtStatusAvailable статус корта, доступного для выбора оператором
const CourtStatusAvailable = "available"
