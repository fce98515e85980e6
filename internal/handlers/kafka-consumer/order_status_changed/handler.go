package order_status_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/kafka"
	"marketplace/internal/pkg/metrics"
	eventservice "marketplace/internal/service/event"
	"marketplace/pkg/logger"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	resultProcessed = "processed"
	resultSkipped   = "skipped"
	resultFailed    = "failed"
	resultRetried   = "retried"
)

var defaultRetry = retrier.Config{
	InitialInterval: 200 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxElapsedTime:  30 * time.Second,
	Randomization:   0.2,
	Multiplier:      2,
	MaxRetries:      5,
}

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	retrier                  retrier.Retrier
}

type Option func(*Handler)

// WithRetrier задает политику повторов для временных ошибок сервиса.
func WithRetrier(r retrier.Retrier) Option {
	return func(h *Handler) {
		h.retrier = r
	}
}

func New(log handlerLogger, eventService Service, timeout time.Duration, opts ...Option) *Handler {
	h := &Handler{
		eventService:             eventService,
		log:                      log.With(logger.NewField("handler", "order.status.changed")),
		messageProcessingTimeout: timeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.retrier == nil {
		h.retrier = backoff_adapter.New(defaultRetry)
	}
	return h
}

// isPermanent: повтор не изменит результат, сообщение можно коммитить.
func isPermanent(err error) bool {
	return errors.Is(err, eventservice.ErrInvalidEvent) || errors.Is(err, eventservice.ErrMissingPayout)
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: при отмене сессии или
// когда временная ошибка пережила все повторы. Сообщение при этом не
// коммитится и будет перечитано следующей сессией.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	event, err := kafka.DecodeOrderEvent(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		metrics.OrderEventsProcessedTotal.WithLabelValues("", resultSkipped).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID.String()),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	attempt := 0
	err = h.retrier.ExecuteWithContext(sess.Context(), func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status.String(), resultRetried).Inc()
		}

		ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
		defer cancel()

		err := h.eventService.ProcessOrderStatusChange(ctx, event)
		if err != nil && (isPermanent(err) || sess.Context().Err() != nil) {
			return &retrier.Permanent{Err: err}
		}
		return err
	})

	switch {
	case err == nil:
		msgLog.Info("order.status.changed: processed", logger.NewField("attempts", attempt))
		metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status.String(), resultProcessed).Inc()

	case sess.Context().Err() != nil:
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler context cancelled, message will be reprocessed")
		return true

	case errors.Is(err, eventservice.ErrInvalidEvent):
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler invalid event")
		metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status.String(), resultSkipped).Inc()

	case errors.Is(err, eventservice.ErrMissingPayout):
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler completed order without payout")
		metrics.MissingPayoutsTotal.Inc()
		metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status.String(), resultFailed).Inc()

	default:
		// оффсет не двигаем: возврат или выплата не должны потеряться
		msgLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("order.status.changed handler gave up on event, message will be reprocessed")
		metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status.String(), resultFailed).Inc()
		return true
	}

	sess.MarkMessage(message, "")
	return false
}
