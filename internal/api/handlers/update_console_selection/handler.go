package update_console_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoOperation        = "укажите ровно одно из полей: court_type_id, court_id, date, week"
	msgInvalidDate        = "некорректное поле date, ожидается формат YYYY-MM-DD"
	msgInvalidWeek        = "поле week принимает значения next или prev"
	msgCourtNotFound      = "корт не найден среди доступных"
	msgNoCourtSelected    = "корт не выбран"
	msgUnauthorized       = "требуется авторизация во внешней платформе"
	msgUnavailable        = "расписание временно недоступно"
)

// Request одна операция над выбором консоли; заполняется ровно одно поле
type Request struct {
	CourtTypeID *int64  `json:"court_type_id,omitempty"`
	CourtID     *int64  `json:"court_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Week        *string `json:"week,omitempty"` // "next" | "prev"
}

// Handler обработчик смены выбора консоли: тип корта, корт, дата, неделя
type Handler struct {
	session ConsoleSession
	logger  Logger
}

func NewHandler(session ConsoleSession, logger Logger) *Handler {
	return &Handler{session: session, logger: logger}
}

// Handle обрабатывает PATCH /api/v1/console
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if countSet(req) != 1 {
		handlers.RespondBadRequest(w, msgNoOperation)
		return
	}

	var err error
	switch {
	case req.CourtTypeID != nil:
		err = h.session.SelectCourtType(ctx, *req.CourtTypeID)
	case req.CourtID != nil:
		err = h.session.SelectCourt(ctx, *req.CourtID)
	case req.Date != nil:
		parsed, perr := time.Parse(domain.DateFormat, *req.Date)
		if perr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		err = h.session.SelectDate(ctx, parsed)
	case req.Week != nil:
		switch *req.Week {
		case "next":
			err = h.session.NextWeek(ctx)
		case "prev":
			err = h.session.PrevWeek(ctx)
		default:
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
	}

	if err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func countSet(req Request) int {
	n := 0
	for _, set := range []bool{req.CourtTypeID != nil, req.CourtID != nil, req.Date != nil, req.Week != nil} {
		if set {
			n++
		}
	}
	return n
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrCourtNotFound):
		handlers.RespondNotFound(w, msgCourtNotFound)
	case errors.Is(err, schedule.ErrNoCourtSelected):
		handlers.RespondError(w, http.StatusConflict, msgNoCourtSelected)
	case errors.Is(err, getWeekSchedule.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)
	case errors.Is(err, getWeekSchedule.ErrScheduleUnavailable):
		h.logger.Warn("UpdateConsoleSelection: refresh failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
	default:
		h.logger.Error("UpdateConsoleSelection: %v", err)
		handlers.RespondInternalError(w)
	}
}
