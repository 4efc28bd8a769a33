package manage_console_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoCourtSelected    = "корт не выбран"
	msgUnknownSlot        = "слот не принадлежит текущей сетке"
	msgSlotOccupied       = "слот уже занят"
	msgDraftNotOpen       = "черновик не открыт"
	msgSubmissionInFlight = "отправка уже выполняется"
	msgMissingName        = "укажите имя клиента"
	msgMissingPhone       = "укажите телефон клиента"
	msgInvalidPhone       = "телефон должен состоять из 10 цифр и начинаться с 0"
	msgInvalidEmail       = "некорректный email"
)

// Handler обработчики жизненного цикла черновика быстрого бронирования.
// Один ресурс — четыре операции: открыть, изменить, закрыть, отправить.
type Handler struct {
	session ConsoleSession
	logger  Logger
}

func NewHandler(session ConsoleSession, logger Logger) *Handler {
	return &Handler{session: session, logger: logger}
}

// HandleOpen обрабатывает POST /api/v1/console/draft
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.session.OpenDraft(req.Date, types.TimeString(req.StartTime)); err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toDraftResponse(h.session.Draft()))
}

// HandleUpdate обрабатывает PUT /api/v1/console/draft
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.session.UpdateDraft(toForm(req)); err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toDraftResponse(h.session.Draft()))
}

// HandleClose обрабатывает DELETE /api/v1/console/draft
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	if err := h.session.CloseDraft(); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSubmit обрабатывает POST /api/v1/console/draft/submit.
// При отказе платформы её статус и текст отдаются дословно; черновик при
// этом остается открытым с текстом ошибки (см. DraftResponse.LastError).
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	booking, err := h.session.Submit(r.Context())
	if err != nil {
		var apiErr *courtservice.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("SubmitConsoleDraft: platform rejected: %v", apiErr)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.JoinedMessage())
			return
		}
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrNoCourtSelected):
		handlers.RespondError(w, http.StatusConflict, msgNoCourtSelected)
	case errors.Is(err, schedule.ErrUnknownSlot):
		handlers.RespondNotFound(w, msgUnknownSlot)
	case errors.Is(err, schedule.ErrSlotOccupied):
		handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)
	case errors.Is(err, schedule.ErrDraftNotOpen):
		handlers.RespondError(w, http.StatusConflict, msgDraftNotOpen)
	case errors.Is(err, schedule.ErrSubmissionInFlight):
		handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)
	case errors.Is(err, createBooking.ErrMissingCustomerName):
		handlers.RespondBadRequest(w, msgMissingName)
	case errors.Is(err, createBooking.ErrMissingCustomerPhone):
		handlers.RespondBadRequest(w, msgMissingPhone)
	case errors.Is(err, createBooking.ErrInvalidCustomerPhone):
		handlers.RespondBadRequest(w, msgInvalidPhone)
	case errors.Is(err, createBooking.ErrInvalidCustomerEmail):
		handlers.RespondBadRequest(w, msgInvalidEmail)
	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
	default:
		h.logger.Error("ManageConsoleDraft: %v", err)
		handlers.RespondInternalError(w)
	}
}
