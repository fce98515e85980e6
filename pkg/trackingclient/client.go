// Package trackingclient - HTTP клиент трекинга заказа и адаптивный поллер поверх него.
package trackingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2

	// не больше двух повторов на один фетч
	maxRetries = 2
)

type Location struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type TimelineItem struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type Tracking struct {
	OrderID                     string         `json:"orderId"`
	Status                      string         `json:"status"`
	DriverCurrentLocation       *Location      `json:"driverCurrentLocation,omitempty"`
	DriverStartDeliveryLocation *Location      `json:"driverStartDeliveryLocation,omitempty"`
	DriverLocationUpdatedAt     *time.Time     `json:"driverLocationUpdatedAt,omitempty"`
	DeliveryLocation            Location       `json:"deliveryLocation"`
	RemainingDistanceMeters     *float64       `json:"remainingDistanceMeters,omitempty"`
	DeliveryDeadline            *time.Time     `json:"deliveryDeadline,omitempty"`
	PollIntervalMs              int64          `json:"pollIntervalMs"`
	Timeline                    []TimelineItem `json:"timeline"`
}

// APIError - ответ сервера с success=false.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracking api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Temporary сообщает, имеет ли смысл повторить запрос.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retrier    retrier.Retrier
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     isRetryable,
		}),
	}
}

// FetchTracking запрашивает снимок трекинга заказа.
func (c *Client) FetchTracking(ctx context.Context, orderID string) (*Tracking, error) {
	var tracking *Tracking
	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		res, err := c.fetchOnce(ctx, orderID)
		if err != nil {
			return err
		}
		tracking = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch tracking %s: %w", orderID, err)
	}

	return tracking, nil
}

func (c *Client) fetchOnce(ctx context.Context, orderID string) (*Tracking, error) {
	endpoint := c.baseURL + "/api/v1/orders/" + url.PathEscape(orderID) + "/tracking"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       "BAD_RESPONSE",
			Message:    err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Error,
		}
	}

	var tracking Tracking
	if err := json.Unmarshal(env.Data, &tracking); err != nil {
		return nil, fmt.Errorf("decode tracking: %w", err)
	}

	return &tracking, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	// сетевые ошибки
	return true
}
