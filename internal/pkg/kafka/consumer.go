package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
)

// Consumer читает топик событий заказов в составе consumer group.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func newConsumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := parseVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.ClientID = "marketplace-" + cfg.ConsumerGroup
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	// sticky сохраняет партиции заказов за тем же инстансом при ребалансе
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategySticky(),
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return saramaConfig, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	saramaConfig, err := newConsumerConfig(cfg)
	if err != nil {
		return nil, err
	}

	consumerLog := log.With(
		logger.NewField("component", "kafka-consumer"),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, consumerLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("consumer group %q: %w", cfg.ConsumerGroup, err)
	}

	return &Consumer{
		log:     consumerLog,
		group:   group,
		topics:  []string{cfg.Topic},
		handler: handler,
	}, nil
}

// Start блокируется до отмены ctx или фатальной ошибки группы.
// Consume возвращается на каждом ребалансе, поэтому крутится в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	go c.logGroupErrors()

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			return fmt.Errorf("consume %v: %w", c.topics, err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		c.log.Info("consumer group rebalanced, rejoining")
	}
}

func (c *Consumer) logGroupErrors() {
	for err := range c.group.Errors() {
		c.log.Error("consumer group error", logger.NewField("error", err))
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}
