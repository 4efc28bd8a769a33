package courtservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenProvider выдает opaque bearer credential текущей сессии оператора.
// Клиент никогда не читает credential из глобального состояния.
type TokenProvider interface {
	Token() (string, bool)
}

// MetricsObserver фиксирует исходящие вызовы платформы (опционально)
type MetricsObserver interface {
	ObserveUpstreamRequest(operation string, status int, duration time.Duration)
}

// Client клиент для работы с CourtService (внешняя платформа бронирования)
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	metrics    MetricsObserver
	log        Logger
}

// NewClient создает новый экземпляр клиента CourtService
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		metrics: metrics,
		log:     log,
	}
}

// ListCourtTypes получает список типов кортов.
// Листинг требует credential; при его отсутствии возвращает ErrUnauthorized.
func (c *Client) ListCourtTypes(ctx context.Context) ([]domain.CourtType, error) {
	var dtos []CourtTypeDTO
	if err := c.getJSON(ctx, "list_court_types", "/court-types", nil, true, &dtos); err != nil {
		return nil, err
	}

	types := make([]domain.CourtType, 0, len(dtos))
	for _, dto := range dtos {
		types = append(types, toDomainCourtType(dto))
	}
	return types, nil
}

// ListCourts получает список кортов (все статусы; фильтрация — на вызывающей стороне)
func (c *Client) ListCourts(ctx context.Context) ([]domain.Court, error) {
	var dtos []CourtDTO
	if err := c.getJSON(ctx, "list_courts", "/courts", nil, true, &dtos); err != nil {
		return nil, err
	}

	courts := make([]domain.Court, 0, len(dtos))
	for _, dto := range dtos {
		courts = append(courts, toDomainCourt(dto))
	}
	return courts, nil
}

// ListBookings получает бронирования корта за закрытый диапазон дат [dateFrom, dateTo]
// и нормализует неоднородные записи в канонические domain.Booking.
// Одна попытка на вызов, без ретраев.
func (c *Client) ListBookings(ctx context.Context, courtID int64, dateFrom, dateTo string) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("court_id", fmt.Sprintf("%d", courtID))
	query.Set("start_date", dateFrom)
	query.Set("end_date", dateTo)

	var raws []RawBooking
	if err := c.getJSON(ctx, "list_bookings", "/bookings", query, true, &raws); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(raws))
	for i := range raws {
		bookings = append(bookings, toDomainBooking(&raws[i]))
	}
	return bookings, nil
}

// CreateBooking отправляет запрос создания бронирования.
// Credential прикладывается при наличии; гостевое создание без него разрешено.
// Непустой idempotencyKey уходит заголовком X-Idempotency-Key.
func (c *Client) CreateBooking(ctx context.Context, payload *CreateBookingRequest, idempotencyKey string) (*domain.Booking, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create_booking", 0, start)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.observe("create_booking", resp.StatusCode, start)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.decodeAPIError(resp)
	}

	var raw RawBooking
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainBooking(&raw), nil
}

// getJSON выполняет GET запрос и декодирует ответ.
// authRequired=true означает, что без credential запрос не отправляется.
func (c *Client) getJSON(ctx context.Context, operation, path string, query url.Values, authRequired bool, out interface{}) error {
	token, ok := c.tokens.Token()
	if authRequired && !ok {
		c.log.Warn("CourtService %s: no session credential", operation)
		return ErrUnauthorized
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		return fmt.Errorf("%w: failed to execute request: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	c.observe(operation, resp.StatusCode, start)

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrFetchFailed, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// decodeAPIError извлекает сообщение(я) платформы дословно
func (c *Client) decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Message) == 0 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Messages:   []string{fmt.Sprintf("unexpected status code %d", resp.StatusCode)},
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Messages:   errResp.Message,
	}
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(operation, status, time.Since(start))
	}
}
