package parkingcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ParkingCore - внешним сервисом маркетплейса,
// который владеет площадками, бронированиями и платежами
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента ParkingCore.
// m может быть nil, если метрики выключены
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
	}
}

// CalculatePrice запрашивает авторитетный расчёт цены бронирования.
// Не требует токена и не имеет побочных эффектов.
func (c *Client) CalculatePrice(ctx context.Context, spotID string, window domain.TimeWindow) (*domain.PriceQuote, error) {
	body := calculatePriceRequest{
		ParkingSpotID: spotID,
		StartTime:     window.Start,
		EndTime:       window.End,
	}

	var payload priceResponse
	if err := c.doJSON(ctx, "calculate_price", http.MethodPost, "/bookings/calculate-price", "", "", body, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// CreateBooking отправляет кандидат бронирования.
// Ключ идемпотентности передаётся заголовком Idempotency-Key, чтобы бэкенд
// мог дедуплицировать случайные повторные отправки.
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*domain.Booking, error) {
	c.log.Info("CreateBooking: spot=%s, window=[%s, %s]",
		req.ParkingSpotID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	var payload bookingResponse
	if err := c.doJSON(ctx, "create_booking", http.MethodPost, "/bookings", token, req.IdempotencyKey, req, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// ListMyBookings получает бронирования вызывающего пользователя
func (c *Client) ListMyBookings(ctx context.Context, token string, status *domain.BookingStatus) ([]domain.Booking, error) {
	return c.listBookings(ctx, "list_my_bookings", "/bookings", token, status)
}

// ListOwnerBookings получает бронирования на площадках вызывающего владельца
func (c *Client) ListOwnerBookings(ctx context.Context, token string, status *domain.BookingStatus) ([]domain.Booking, error) {
	return c.listBookings(ctx, "list_owner_bookings", "/bookings/owner", token, status)
}

func (c *Client) listBookings(ctx context.Context, op, path, token string, status *domain.BookingStatus) ([]domain.Booking, error) {
	if status != nil {
		path += "?" + url.Values{"status_filter": {string(*status)}}.Encode()
	}

	var payload []bookingResponse
	if err := c.doJSON(ctx, op, http.MethodGet, path, token, "", nil, &payload); err != nil {
		return nil, err
	}
	return bookingsToDomain(payload), nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, token, bookingID string) (*domain.Booking, error) {
	var payload bookingResponse
	if err := c.doJSON(ctx, "get_booking", http.MethodGet, "/bookings/"+url.PathEscape(bookingID), token, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// UpdateStatus запрашивает переход статуса (отмена, подтверждение).
// Легальность перехода проверяет бэкенд; отклонение приходит ошибкой.
func (c *Client) UpdateStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus, reason *string) (*domain.Booking, error) {
	body := updateStatusRequest{
		Status:             string(status),
		CancellationReason: reason,
	}

	var payload bookingResponse
	if err := c.doJSON(ctx, "update_status", http.MethodPut, "/bookings/"+url.PathEscape(bookingID)+"/status", token, "", body, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// CheckIn отмечает заезд по бронированию
func (c *Client) CheckIn(ctx context.Context, token, bookingID string) (*domain.Booking, error) {
	var payload bookingResponse
	if err := c.doJSON(ctx, "check_in", http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/check-in", token, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// CheckOut отмечает выезд по бронированию
func (c *Client) CheckOut(ctx context.Context, token, bookingID string) (*domain.Booking, error) {
	var payload bookingResponse
	if err := c.doJSON(ctx, "check_out", http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/check-out", token, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// doJSON выполняет запрос и декодирует JSON ответ в out.
// Статусы вне 2xx конвертируются в *APIError с дословным detail бэкенда.
func (c *Client) doJSON(ctx context.Context, op, method, path, token, idempotencyKey string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, "error", start)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.observe(op, statusClass(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// observe учитывает исходящий запрос в метриках, если они включены
func (c *Client) observe(op, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.OutboundRequestsTotal.WithLabelValues(op, status).Inc()
	c.metrics.OutboundRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func (c *Client) errorFromResponse(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Detail == "" {
		// Тело нечитаемо, сохраняем как есть, чтобы не потерять контекст
		payload.Detail = string(raw)
	}

	apiErr := newAPIError(resp.StatusCode, payload.Detail)
	c.log.Warn("%s %s failed: status=%d, detail=%q", method, path, resp.StatusCode, payload.Detail)
	return apiErr
}
