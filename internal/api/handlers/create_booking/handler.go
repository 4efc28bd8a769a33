package create_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTarget      = "некорректный целевой слот"
	msgMissingName        = "укажите имя клиента"
	msgMissingPhone       = "укажите телефон клиента"
	msgInvalidPhone       = "телефон должен состоять из 10 цифр и начинаться с 0"
	msgInvalidEmail       = "некорректный email"
	msgUnauthorized       = "требуется авторизация во внешней платформе"
)

// Handler обработчик быстрого бронирования пустого слота
type Handler struct {
	usecase CreateBookingUseCase
	logger  Logger
}

func NewHandler(uc CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

// Handle обрабатывает POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Декодируем тело запроса
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Запрос всегда уходит на платформу с ключом идемпотентности; клиент,
	// который хочет безопасно повторять свой запрос, присылает собственный
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	// 2. Создаем бронирование через внешнюю платформу
	res, err := h.usecase.Execute(ctx, toUseCaseRequest(req))
	if err != nil {
		h.respondError(w, req.CourtID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(res.Booking))
}

func (h *Handler) respondError(w http.ResponseWriter, courtID int64, err error) {
	// Ошибка платформы отдается с её статусом и текстом дословно
	var apiErr *courtservice.APIError
	if errors.As(err, &apiErr) {
		h.logger.Warn("CreateBooking: court_id=%d: platform rejected: %v", courtID, apiErr)
		handlers.RespondError(w, apiErr.StatusCode, apiErr.JoinedMessage())
		return
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidTarget)
	case errors.Is(err, usecase.ErrMissingCustomerName):
		handlers.RespondBadRequest(w, msgMissingName)
	case errors.Is(err, usecase.ErrMissingCustomerPhone):
		handlers.RespondBadRequest(w, msgMissingPhone)
	case errors.Is(err, usecase.ErrInvalidCustomerPhone):
		handlers.RespondBadRequest(w, msgInvalidPhone)
	case errors.Is(err, usecase.ErrInvalidCustomerEmail):
		handlers.RespondBadRequest(w, msgInvalidEmail)
	case errors.Is(err, courtservice.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)
	default:
		h.logger.Error("CreateBooking: court_id=%d: %v", courtID, err)
		handlers.RespondInternalError(w)
	}
}
