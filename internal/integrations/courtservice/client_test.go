package courtservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, staticTokens{token: token}, nil, noopLogger{})
}

func TestListBookings_QueryAndAuth(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		q := r.URL.Query()
		gotQuery = map[string]string{
			"court_id":   q.Get("court_id"),
			"start_date": q.Get("start_date"),
			"end_date":   q.Get("end_date"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"booking_id":42,"court_id":7,"date":"2026-03-10","start_time":"10:00","end_time":"11:00","status":"confirmed"}]`))
	}, "secret-token")

	bookings, err := client.ListBookings(context.Background(), 7, "2026-03-09", "2026-03-15")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, map[string]string{
		"court_id":   "7",
		"start_date": "2026-03-09",
		"end_date":   "2026-03-15",
	}, gotQuery)

	require.Len(t, bookings, 1)
	assert.Equal(t, int64(42), bookings[0].ID)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
}

func TestListBookings_NoTokenRejectedLocally(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "")

	_, err := client.ListBookings(context.Background(), 7, "2026-03-09", "2026-03-15")
	assert.ErrorIs(t, err, ErrUnauthorized)
	// Запрос без credential не уходит на платформу
	assert.False(t, called)
}

func TestListCourts_UpstreamUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "expired-token")

	_, err := client.ListCourts(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListCourtTypes_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "secret-token")

	_, err := client.ListCourtTypes(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestCreateBooking_GuestWithoutToken(t *testing.T) {
	var gotAuth, gotIdempotency string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("X-Idempotency-Key")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"booking_id":101,"court_id":7,"date":"2026-03-10","start_time":"10:00","end_time":"11:00","status":"pending"}`))
	}, "")

	booking, err := client.CreateBooking(context.Background(), &CreateBookingRequest{CourtID: 7}, "draft-key-1")
	require.NoError(t, err)

	// Гостевое создание идет без Authorization, но с ключом идемпотентности
	assert.Empty(t, gotAuth)
	assert.Equal(t, "draft-key-1", gotIdempotency)
	assert.Equal(t, int64(101), booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestCreateBooking_APIErrorSingleMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Слот уже занят"}`))
	}, "secret-token")

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{CourtID: 7}, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Слот уже занят", apiErr.JoinedMessage())
}

func TestCreateBooking_APIErrorMessageList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["телефон обязателен","email некорректен"]}`))
	}, "secret-token")

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{CourtID: 7}, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	// Несколько сообщений склеиваются через запятую
	assert.Equal(t, "телефон обязателен, email некорректен", apiErr.JoinedMessage())
}

func TestCreateBooking_APIErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "secret-token")

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{CourtID: 7}, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.JoinedMessage())
}

func TestCreateBooking_WithToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"booking_id":102,"court_id":7,"date":"2026-03-10","start_time":"10:00","end_time":"11:00","status":"pending"}`))
	}, "operator-token")

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{CourtID: 7}, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer operator-token", gotAuth)
}
