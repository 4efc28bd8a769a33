package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	usecase "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

type stubUseCase struct {
	booking *domain.Booking
	err     error
	got     *usecase.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *usecase.Request) (*usecase.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.Response{Booking: s.booking}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"court_id": 7,
	"date": "2026-03-10",
	"start_time": "14:00",
	"end_time": "15:00",
	"customer_name": "Nguyen Van A",
	"customer_phone": "0912345678"
}`

func doRequest(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{
		booking: &domain.Booking{
			ID:            101,
			CourtID:       7,
			Date:          "2026-03-10",
			StartTime:     "14:00",
			EndTime:       "15:00",
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			CustomerName:  "Nguyen Van A",
		},
	}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.BookingID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "14:00", resp.StartTime)

	// Тело запроса доехало до use case без искажений
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.Target.CourtID)
	assert.Equal(t, "Nguyen Van A", uc.got.Draft.CustomerName)
}

func TestHandle_MintsIdempotencyKeyWhenAbsent(t *testing.T) {
	uc := &stubUseCase{booking: &domain.Booking{ID: 101}}

	rec := doRequest(t, uc, validBody)

	// Без ключа от клиента запрос уходит на платформу с выпущенным сервером
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.NotEmpty(t, uc.got.IdempotencyKey)
}

func TestHandle_ClientIdempotencyKeyPreserved(t *testing.T) {
	uc := &stubUseCase{booking: &domain.Booking{ID: 101}}
	body := strings.TrimSuffix(validBody, "}") + `, "idempotency_key": "client-key-1"}`

	rec := doRequest(t, uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "client-key-1", uc.got.IdempotencyKey)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"court_id": "seven"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "invalid target", err: usecase.ErrInvalidInput},
		{name: "missing name", err: usecase.ErrMissingCustomerName},
		{name: "missing phone", err: usecase.ErrMissingCustomerPhone},
		{name: "invalid phone", err: usecase.ErrInvalidCustomerPhone},
		{name: "invalid email", err: usecase.ErrInvalidCustomerEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_PlatformRejectionPassedThrough(t *testing.T) {
	uc := &stubUseCase{
		err: &courtservice.APIError{StatusCode: 409, Messages: []string{"Слот уже занят", "обновите расписание"}},
	}

	rec := doRequest(t, uc, validBody)

	// Статус и текст платформы отдаются дословно
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Слот уже занят, обновите расписание", resp.Message)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: usecase.ErrInternal}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
