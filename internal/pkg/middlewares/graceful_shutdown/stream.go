package graceful_shutdown

import (
	"context"
	"net/http"
)

// StreamMiddleware обрывает долгие запросы (SSE), когда отменяется stopCtx.
// Shutdown не дождется их сам: соединение потока никогда не становится idle.
func StreamMiddleware(stopCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithCancel(r.Context())
			defer cancel()

			stopAfter := context.AfterFunc(stopCtx, cancel)
			defer stopAfter()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
