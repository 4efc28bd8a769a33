package get_console_state

import (
	weekScheduleView "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_week_schedule"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

// CourtTypeView тип корта в снимке состояния
type CourtTypeView struct {
	TypeID int64  `json:"type_id"`
	Name   string `json:"name"`
}

// CourtView корт выбранного типа в снимке состояния
type CourtView struct {
	CourtID    int64   `json:"court_id"`
	Name       string  `json:"name"`
	VenueName  string  `json:"venue_name,omitempty"`
	HourlyRate float64 `json:"hourly_rate"`
}

// DraftView открытый черновик быстрого бронирования в снимке состояния
type DraftView struct {
	CourtID       int64  `json:"court_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Submitting    bool   `json:"submitting"`
	LastError     string `json:"last_error,omitempty"`
}

// Response снимок состояния консоли: каталог, выбор, неделя, сетка, черновик
type Response struct {
	CourtTypes      []CourtTypeView            `json:"court_types"`
	Courts          []CourtView                `json:"courts"`
	SelectedTypeID  int64                      `json:"selected_type_id"`
	SelectedCourtID int64                      `json:"selected_court_id"`
	WeekStartDate   string                     `json:"week_start_date"`
	WeekEndDate     string                     `json:"week_end_date"`
	Schedule        *weekScheduleView.Response `json:"schedule,omitempty"`
	Draft           *DraftView                 `json:"draft,omitempty"`
}

func toResponse(session ConsoleSession) Response {
	week := session.Week()

	resp := Response{
		CourtTypes:      make([]CourtTypeView, 0),
		Courts:          make([]CourtView, 0),
		SelectedTypeID:  session.SelectedCourtType(),
		SelectedCourtID: session.SelectedCourt(),
		WeekStartDate:   week.StartDate(),
		WeekEndDate:     week.EndDate(),
	}

	for _, t := range session.CourtTypes() {
		resp.CourtTypes = append(resp.CourtTypes, CourtTypeView{TypeID: t.ID, Name: t.Name})
	}
	for _, c := range session.FilteredCourts() {
		resp.Courts = append(resp.Courts, CourtView{
			CourtID:    c.ID,
			Name:       c.Name,
			VenueName:  c.VenueName,
			HourlyRate: c.HourlyRate,
		})
	}

	if sched := session.Schedule(); sched != nil {
		view := weekScheduleView.NewResponse(sched)
		resp.Schedule = &view
	}
	if draft := session.Draft(); draft != nil {
		resp.Draft = toDraftView(draft)
	}

	return resp
}

func toDraftView(draft *schedule.DraftView) *DraftView {
	return &DraftView{
		CourtID:       draft.Target.CourtID,
		Date:          draft.Target.Date,
		StartTime:     draft.Target.StartTime.String(),
		EndTime:       draft.Target.EndTime.String(),
		CustomerName:  draft.Form.CustomerName,
		CustomerPhone: draft.Form.CustomerPhone,
		CustomerEmail: draft.Form.CustomerEmail,
		Notes:         draft.Form.Notes,
		Submitting:    draft.Submitting,
		LastError:     draft.LastError,
	}
}
