package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/handlers/rest/respond"
	"marketplace/pkg/logger"
)

// Middleware ограничивает время обработки запроса. Если обработчик вышел
// по дедлайну и ничего не записал, клиент получает 504 в общем конверте.
func Middleware(log logger.Logger, limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			tw := &trackingWriter{ResponseWriter: w}
			next.ServeHTTP(tw, r.WithContext(ctx))

			if !tw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.Warn("request deadline exceeded",
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("limit", limit.String()),
				)
				respond.Error(w, log, ctx.Err())
			}
		})
	}
}

type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *trackingWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *trackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
