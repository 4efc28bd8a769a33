package get_week_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_schedule: invalid input data")

	// ErrUnauthorized возвращается, когда у сессии оператора нет действующего credential
	ErrUnauthorized = errors.New("get_week_schedule: unauthorized")

	// ErrScheduleUnavailable возвращается, когда листинг бронирований завершился неуспехом.
	// Вызывающий обязан показать пустую сетку, а не данные прошлой недели.
	ErrScheduleUnavailable = errors.New("get_week_schedule: schedule unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_schedule: internal error")
)
