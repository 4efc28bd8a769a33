package schedule

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// DraftView снимок состояния открытого черновика для отображения
type DraftView struct {
	Target     domain.SlotRef
	Form       domain.BookingDraft
	Submitting bool
	LastError  string // сообщение платформы/валидации дословно; "" если ошибок не было
}

// draftState внутреннее состояние черновика.
// Черновик принадлежит открытому потоку ввода и отбрасывается при закрытии,
// а не сливается с чем-либо.
type draftState struct {
	target         domain.SlotRef
	form           domain.BookingDraft
	idempotencyKey string
	submitting     bool
	lastError      string
}
