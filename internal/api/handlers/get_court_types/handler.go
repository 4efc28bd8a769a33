package get_court_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

const (
	msgUnauthorized = "требуется авторизация во внешней платформе"
	msgUnavailable  = "каталог типов кортов временно недоступен"
)

// CourtTypeResponse модель типа корта в ответе
type CourtTypeResponse struct {
	TypeID      int64  `json:"type_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Handler обработчик получения списка типов кортов
type Handler struct {
	catalog CourtCatalogClient
	logger  Logger
}

func NewHandler(catalog CourtCatalogClient, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle обрабатывает GET /api/v1/court-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	types, err := h.catalog.ListCourtTypes(ctx)
	if err != nil {
		switch {
		case errors.Is(err, courtservice.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		default:
			h.logger.Error("GetCourtTypes: failed to fetch court types: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(types))
}

func toResponse(types []domain.CourtType) []CourtTypeResponse {
	out := make([]CourtTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, CourtTypeResponse{
			TypeID:      t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return out
}
