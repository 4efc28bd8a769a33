package schedule

import "errors"

var (
	// ErrNoCourtSelected возвращается, когда операция требует выбранного корта
	ErrNoCourtSelected = errors.New("schedule session: no court selected")

	// ErrCourtNotFound возвращается при выборе корта, отсутствующего среди доступных
	ErrCourtNotFound = errors.New("schedule session: court not found")

	// ErrUnknownSlot возвращается, когда (дата, слот) не принадлежит текущей сетке
	ErrUnknownSlot = errors.New("schedule session: unknown slot")

	// ErrSlotOccupied возвращается при попытке открыть черновик на занятом слоте.
	// Занятый слот ведёт к карточке бронирования, а не к форме.
	ErrSlotOccupied = errors.New("schedule session: slot is occupied")

	// ErrDraftNotOpen возвращается, когда операция требует открытого черновика
	ErrDraftNotOpen = errors.New("schedule session: draft is not open")

	// ErrSubmissionInFlight возвращается, когда отправка черновика уже выполняется
	ErrSubmissionInFlight = errors.New("schedule session: submission already in flight")

	// ErrInternal возвращается при внутренних ошибках сессии
	ErrInternal = errors.New("schedule session: internal error")
)
