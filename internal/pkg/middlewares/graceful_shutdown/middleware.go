package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"marketplace/internal/handlers/rest/respond"
	"marketplace/pkg/logger"
)

// Middleware отклоняет новые запросы, когда остановка уже началась и ongoingCtx отменён.
func Middleware(log logger.Logger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				respond.Unavailable(w, log, "service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
