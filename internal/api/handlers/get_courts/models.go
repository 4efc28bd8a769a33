package get_courts

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// CourtResponse модель корта в ответе
type CourtResponse struct {
	CourtID    int64   `json:"court_id"`
	Name       string  `json:"name"`
	TypeID     int64   `json:"type_id"`
	TypeName   string  `json:"type_name,omitempty"`
	VenueName  string  `json:"venue_name,omitempty"`
	HourlyRate float64 `json:"hourly_rate"`
	Status     string  `json:"status"`
}

func toResponse(courts []domain.Court) []CourtResponse {
	out := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		out = append(out, CourtResponse{
			CourtID:    c.ID,
			Name:       c.Name,
			TypeID:     c.TypeID,
			TypeName:   c.TypeName,
			VenueName:  c.VenueName,
			HourlyRate: c.HourlyRate,
			Status:     c.Status,
		})
	}
	return out
}
