package auth

import (
	"fmt"
	"net/http"

	"marketplace/internal/apperr"
	"marketplace/internal/handlers/rest/respond"
	pkgauth "marketplace/internal/pkg/auth"
	"marketplace/pkg/logger"
)

// Middleware кладет пользователя в контекст запроса. Запрос без заголовка
// проходит анонимно, решение принимает сервис. Битый токен сразу получает 401.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := authenticator.ParseHeader(header)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected bearer token")

				respond.Error(w, log, fmt.Errorf("%w: %w", apperr.Unauthorized, err))
				return
			}

			next.ServeHTTP(w, r.WithContext(pkgauth.WithPrincipal(r.Context(), principal)))
		})
	}
}
