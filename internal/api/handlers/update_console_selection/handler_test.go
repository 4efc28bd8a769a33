package update_console_selection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	schedule "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubCatalog struct{}

func (stubCatalog) ListCourtTypes(context.Context) ([]domain.CourtType, error) {
	return []domain.CourtType{
		{ID: 1, Name: "Badminton"},
		{ID: 2, Name: "Tennis"},
	}, nil
}

func (stubCatalog) ListCourts(context.Context) ([]domain.Court, error) {
	return []domain.Court{
		{ID: 7, Name: "Court A", TypeID: 1, Status: domain.CourtStatusAvailable},
		{ID: 9, Name: "Court C", TypeID: 2, Status: domain.CourtStatusAvailable},
	}, nil
}

type stubBookings struct{}

func (stubBookings) ListBookings(context.Context, int64, string, string) ([]*domain.Booking, error) {
	return nil, nil
}

type stubCreateUC struct{}

func (stubCreateUC) Execute(context.Context, *createBooking.Request) (*createBooking.Response, error) {
	return &createBooking.Response{}, nil
}

// newTestSession собирает настоящую сессию: PATCH должен доезжать до её
// методов навигации и выбора, а не до мока
func newTestSession(t *testing.T) *schedule.Session {
	t.Helper()
	weekUC := getWeekSchedule.NewUseCase(stubBookings{}, 6, 22, 60, noopLogger{})
	sess := schedule.NewSession(stubCatalog{}, weekUC, stubCreateUC{}, noopLogger{})
	require.NoError(t, sess.Init(context.Background()))
	return sess
}

func doPatch(sess *schedule.Session, body string) *httptest.ResponseRecorder {
	h := NewHandler(sess, noopLogger{})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/console", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_NextWeek(t *testing.T) {
	sess := newTestSession(t)
	before, err := time.Parse(domain.DateFormat, sess.Week().StartDate())
	require.NoError(t, err)

	rec := doPatch(sess, `{"week": "next"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before.AddDate(0, 0, 7).Format(domain.DateFormat), sess.Week().StartDate())
}

func TestHandle_PrevWeek(t *testing.T) {
	sess := newTestSession(t)
	before, err := time.Parse(domain.DateFormat, sess.Week().StartDate())
	require.NoError(t, err)

	rec := doPatch(sess, `{"week": "prev"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before.AddDate(0, 0, -7).Format(domain.DateFormat), sess.Week().StartDate())
}

func TestHandle_SelectDate(t *testing.T) {
	sess := newTestSession(t)

	rec := doPatch(sess, `{"date": "2026-05-01"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	// Текущей становится неделя выбранной даты
	assert.Equal(t, "2026-04-27", sess.Week().StartDate())
	assert.Equal(t, "2026-05-03", sess.Week().EndDate())
}

func TestHandle_SelectCourtType(t *testing.T) {
	sess := newTestSession(t)
	require.Equal(t, int64(7), sess.SelectedCourt())

	rec := doPatch(sess, `{"court_type_id": 2}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	// Выбранным становится первый корт нового типа
	assert.Equal(t, int64(9), sess.SelectedCourt())
}

func TestHandle_SelectCourtUnknown(t *testing.T) {
	sess := newTestSession(t)

	rec := doPatch(sess, `{"court_id": 999}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// Выбор не изменился
	assert.Equal(t, int64(7), sess.SelectedCourt())
}

func TestHandle_ExactlyOneOperation(t *testing.T) {
	sess := newTestSession(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "no fields", body: `{}`},
		{name: "two fields", body: `{"court_id": 7, "week": "next"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPatch(sess, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InvalidValues(t *testing.T) {
	sess := newTestSession(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{"week": 42}`},
		{name: "unknown week direction", body: `{"week": "sideways"}`},
		{name: "bad date format", body: `{"date": "01.05.2026"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPatch(sess, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
