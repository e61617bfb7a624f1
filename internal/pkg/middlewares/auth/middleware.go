package auth

import (
	"context"
	"net/http"
	"strings"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type contextKey struct{}

var actorKey contextKey

// ActorFromContext возвращает аутентифицированного инициатора запроса.
// Пустой Actor означает, что middleware не отработал (маршрут без защиты).
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}

func ContextWithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"missing bearer token"}`))
				return
			}

			actor, err := parser.ParseToken(token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token rejected")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid token"}`))
				return
			}

			ctx := ContextWithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
