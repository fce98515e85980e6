//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stale_tracking_test
package stale_tracking

import (
	"context"
	"time"
)

type Repository interface {
	CountStaleTracking(ctx context.Context, staleBefore time.Time) (int64, error)
}
