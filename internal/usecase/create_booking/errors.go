package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном целевом слоте
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrMissingCustomerName возвращается при пустом имени клиента
	ErrMissingCustomerName = errors.New("create_booking: customer name is required")

	// ErrMissingCustomerPhone возвращается при пустом телефоне клиента
	ErrMissingCustomerPhone = errors.New("create_booking: customer phone is required")

	// ErrInvalidCustomerPhone возвращается, когда телефон не состоит из 10 цифр с ведущим нулём
	ErrInvalidCustomerPhone = errors.New("create_booking: invalid customer phone")

	// ErrInvalidCustomerEmail возвращается при некорректном формате email
	ErrInvalidCustomerEmail = errors.New("create_booking: invalid customer email")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
