package order_tracking_stream_get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/apperr"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/handlers/rest/request"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

const (
	eventTracking = "tracking"
	eventError    = "error"
	eventEnd      = "end"
)

var errStreamingUnsupported = errors.New("response writer does not support streaming")

// Handler отдает снимки трекинга как server-sent events.
// Период отправки зависит от статуса, на терминальном статусе поток закрывается.
type Handler struct {
	log      handlerLogger
	service  Service
	interval IntervalFunc
}

func New(log handlerLogger, service Service, interval IntervalFunc) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		interval: interval,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathID(r, "id")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	ctx := r.Context()
	principal := auth.FromContext(ctx)

	// до первого снимка ошибки отдаются обычным JSON
	tracking, err := h.service.GetTracking(ctx, principal, id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respond.Error(w, h.log, errStreamingUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	metrics.TrackingStreams.Inc()
	defer metrics.TrackingStreams.Dec()

	streamLog := h.log.With(logger.NewField("order", id.String()))

	for {
		if err := writeEvent(w, eventTracking, presenter.Tracking(tracking)); err != nil {
			streamLog.With(
				logger.NewField("error", err),
			).Warn("tracking stream write failed")
			return
		}
		flusher.Flush()

		if tracking.Status.IsTerminal() {
			_ = writeEvent(w, eventEnd, map[string]string{"status": tracking.Status.String()})
			flusher.Flush()
			return
		}

		if !wait(ctx, h.interval(tracking.Status)) {
			return
		}

		tracking, err = h.nextSnapshot(ctx, principal, id)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			h.writeError(w, streamLog, err)
			flusher.Flush()
			return
		}
	}
}

func (h *Handler) nextSnapshot(ctx context.Context, principal *entities.Principal, id uuid.UUID) (*entities.Tracking, error) {
	tracking, err := h.service.GetTracking(ctx, principal, id)
	if err != nil {
		return nil, fmt.Errorf("refresh tracking: %w", err)
	}
	return tracking, nil
}

// writeError повторяет конверт ошибки внутри события.
func (h *Handler) writeError(w http.ResponseWriter, log handlerLogger, err error) {
	code := apperr.Code(err)
	message := err.Error()
	if respond.StatusCode(err) == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("tracking stream failed")
		message = "internal server error"
	}

	_ = writeEvent(w, eventError, dto.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, body)
	return err
}

// wait возвращает false, если клиент отключился раньше.
func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
