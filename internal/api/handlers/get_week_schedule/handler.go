package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDate    = "некорректный параметр date, ожидается формат YYYY-MM-DD"
	msgUnauthorized   = "требуется авторизация во внешней платформе"
	msgUnavailable    = "расписание временно недоступно"
)

// Handler обработчик получения недельного расписания корта
type Handler struct {
	usecase WeekScheduleUseCase
	logger  Logger
}

func NewHandler(uc WeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

// Handle обрабатывает GET /api/v1/courts/{courtId}/week-schedule?date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Разбираем ID корта из пути
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// 2. Разбираем опорную дату; по умолчанию — текущая неделя
	anchor := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		anchor = parsed
	}

	// 3. Строим недельную сетку занятости
	res, err := h.usecase.Execute(ctx, &usecase.Request{CourtID: courtID, Anchor: anchor})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCourtID)
		case errors.Is(err, usecase.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		default:
			h.logger.Error("GetWeekSchedule: court_id=%d: %v", courtID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewResponse(res))
}
