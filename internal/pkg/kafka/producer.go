package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
)

type Producer struct {
	log    logger.Logger
	client sarama.SyncProducer
	topic  string
}

func newProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := parseVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.ClientID = "marketplace-outbox"

	// SyncProducer требует Return.Successes
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Timeout = cfg.ProducerTimeout
	// события одного заказа попадают в одну партицию
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig, err := newProducerConfig(cfg)
	if err != nil {
		return nil, err
	}

	producerLog := log.With(
		logger.NewField("component", "kafka-producer"),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	client, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &Producer{
		log:    producerLog,
		client: client,
		topic:  cfg.Topic,
	}, nil
}

// Publish отправляет события пачкой. Ошибка любого сообщения - ошибка всей пачки,
// повторная отправка безопасна: потребитель идемпотентен.
func (p *Producer) Publish(ctx context.Context, events []entities.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		body, err := EncodeOrderEvent(event)
		if err != nil {
			return err
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(event.OrderID.String()),
			Value:     sarama.ByteEncoder(body),
			Timestamp: event.OccurredAt.In(time.UTC),
		})
	}

	err := p.client.SendMessages(messages)
	if err != nil {
		return fmt.Errorf("send order events: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}
