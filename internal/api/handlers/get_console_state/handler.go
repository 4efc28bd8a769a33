package get_console_state

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

const (
	msgUnauthorized = "требуется авторизация во внешней платформе"
	msgUnavailable  = "внешняя платформа временно недоступна"
)

// Handler обработчик снимка состояния консоли расписания
type Handler struct {
	session ConsoleSession
	logger  Logger
}

func NewHandler(session ConsoleSession, logger Logger) *Handler {
	return &Handler{session: session, logger: logger}
}

// Handle обрабатывает GET /api/v1/console.
// Первый запрос выполняет начальную загрузку каталога (аналог открытия
// страницы); дальше отдается текущее состояние сессии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.session.Initialized() {
		if err := h.session.Init(ctx); err != nil {
			h.respondError(w, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(h.session))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, courtservice.ErrUnauthorized), errors.Is(err, getWeekSchedule.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)
	case errors.Is(err, getWeekSchedule.ErrScheduleUnavailable), errors.Is(err, courtservice.ErrFetchFailed):
		h.logger.Error("GetConsoleState: init failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
	default:
		h.logger.Error("GetConsoleState: %v", err)
		handlers.RespondInternalError(w)
	}
}
