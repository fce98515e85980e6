package healthcheck_head

import "context"

// Pinger - зависимость, без которой сервис не готов принимать трафик.
type Pinger interface {
	Ping(ctx context.Context) error
}
