package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

type stubCourtClient struct {
	booking *domain.Booking
	err     error

	gotPayload        *courtservice.CreateBookingRequest
	gotIdempotencyKey string
	calls             int
}

func (s *stubCourtClient) CreateBooking(_ context.Context, payload *courtservice.CreateBookingRequest, idempotencyKey string) (*domain.Booking, error) {
	s.calls++
	s.gotPayload = payload
	s.gotIdempotencyKey = idempotencyKey
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	created := &domain.Booking{ID: 101, CourtID: 7, Date: "2026-03-10", StartTime: "10:00", EndTime: "11:00"}
	client := &stubCourtClient{booking: created}
	uc := NewUseCase(client, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Target:         validTarget(),
		Draft:          validDraft(),
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, created, resp.Booking)
	assert.Equal(t, "key-1", client.gotIdempotencyKey)

	// Payload собран из валидированных данных, оплата всегда наличными
	payload := client.gotPayload
	require.NotNil(t, payload)
	assert.Equal(t, int64(7), payload.CourtID)
	assert.Equal(t, "2026-03-10", payload.Date)
	assert.Equal(t, "10:00", payload.StartTime)
	assert.Equal(t, "11:00", payload.EndTime)
	assert.Equal(t, "Nguyen Van A", payload.RenterName)
	assert.Equal(t, "0912345678", payload.RenterPhone)
	assert.Equal(t, "a@example.com", payload.RenterEmail)
	assert.Equal(t, domain.PaymentMethodCash, payload.PaymentMethod)
}

func TestExecute_GuestEmailSubstituted(t *testing.T) {
	client := &stubCourtClient{booking: &domain.Booking{ID: 102}}
	uc := NewUseCase(client, noopLogger{})

	draft := validDraft()
	draft.CustomerEmail = ""

	_, err := uc.Execute(context.Background(), &Request{Target: validTarget(), Draft: draft})
	require.NoError(t, err)
	assert.Equal(t, domain.GuestCustomerEmail, client.gotPayload.RenterEmail)
}

func TestExecute_ValidationBlocksSubmission(t *testing.T) {
	client := &stubCourtClient{}
	uc := NewUseCase(client, noopLogger{})

	draft := validDraft()
	draft.CustomerPhone = "12345"

	_, err := uc.Execute(context.Background(), &Request{Target: validTarget(), Draft: draft})
	assert.ErrorIs(t, err, ErrInvalidCustomerPhone)

	// До платформы запрос не дошел
	assert.Zero(t, client.calls)
}

func TestExecute_PlatformRejection(t *testing.T) {
	// Отказ платформы отдается вызывающему как есть, с её текстом
	rejection := &courtservice.APIError{
		StatusCode: 409,
		Messages:   []string{"Слот уже занят", "выберите другое время"},
	}
	client := &stubCourtClient{err: rejection}
	uc := NewUseCase(client, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Target: validTarget(), Draft: validDraft()})
	require.Error(t, err)

	var apiErr *courtservice.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "Слот уже занят, выберите другое время", apiErr.JoinedMessage())
}

func TestExecute_TransportFailureWrapped(t *testing.T) {
	client := &stubCourtClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Target: validTarget(), Draft: validDraft()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_EmptyIdempotencyKeyAllowed(t *testing.T) {
	client := &stubCourtClient{booking: &domain.Booking{ID: 103}}
	uc := NewUseCase(client, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Target: validTarget(), Draft: validDraft()})
	require.NoError(t, err)
	assert.Empty(t, client.gotIdempotencyKey)
}
