package kafka

import "strings"

// ParseBrokers разбирает список брокеров из KAFKA_BROKERS, пустые элементы отбрасываются.
func ParseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")

	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
