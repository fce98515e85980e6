package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"marketplace/pkg/logger"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

var brokerRetry = retrier.Config{
	InitialInterval: time.Second,
	MaxInterval:     15 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

func parseVersion(raw string) (sarama.KafkaVersion, error) {
	version, err := sarama.ParseKafkaVersion(raw)
	if err != nil {
		return sarama.KafkaVersion{}, fmt.Errorf("parse kafka version %q: %w", raw, err)
	}
	return version, nil
}

// waitForBrokers блокируется, пока кластер не отдаст метаданные хотя бы по одному топику.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryCfg := brokerRetry
	retryCfg.OnRetry = func(err error, next time.Duration) {
		log.Warn("kafka is not ready yet",
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		)
	}

	err := backoff_adapter.New(retryCfg).ExecuteWithContext(ctx, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				log.Warn("close probe client", logger.NewField("error", cerr))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("kafka brokers %v unreachable: %w", brokers, err)
	}

	log.Info("kafka brokers reachable")
	return nil
}
