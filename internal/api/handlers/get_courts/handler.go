package get_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

const (
	msgInvalidTypeID = "некорректный параметр typeId"
	msgUnauthorized  = "требуется авторизация во внешней платформе"
	msgUnavailable   = "каталог кортов временно недоступен"
)

// Handler обработчик получения списка доступных кортов
type Handler struct {
	catalog CourtCatalogClient
	logger  Logger
}

func NewHandler(catalog CourtCatalogClient, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle обрабатывает GET /api/v1/courts?typeId={typeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Разбираем необязательный фильтр по типу корта
	var typeID int64
	if raw := r.URL.Query().Get("typeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			handlers.RespondBadRequest(w, msgInvalidTypeID)
			return
		}
		typeID = parsed
	}

	// 2. Получаем каталог кортов у внешней платформы
	courts, err := h.catalog.ListCourts(ctx)
	if err != nil {
		switch {
		case errors.Is(err, courtservice.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		default:
			h.logger.Error("GetCourts: failed to fetch courts: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
		}
		return
	}

	// 3. Отдаем только доступные корты; фильтр по типу — опционален
	if typeID > 0 {
		courts = domain.FilterAvailableCourts(courts, typeID)
	} else {
		available := make([]domain.Court, 0, len(courts))
		for _, c := range courts {
			if c.IsAvailable() {
				available = append(available, c)
			}
		}
		courts = available
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(courts))
}
