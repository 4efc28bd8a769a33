package create_booking

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Request модель запроса быстрого бронирования: целевой слот плюс черновик формы
type Request struct {
	Target domain.SlotRef      // Выбранный пустой слот (корт, дата, интервал)
	Draft  domain.BookingDraft // Введённые оператором данные клиента

	// IdempotencyKey ключ на время жизни черновика; повторная отправка того же
	// черновика не создает дубль. Пустое значение — ключ не прикладывается.
	IdempotencyKey string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
