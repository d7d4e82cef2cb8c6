package admin_auth

import (
	"errors"
	"net/http"
	"strings"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/auth"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/pkg/logger"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

const bearerPrefix = "Bearer "

// Middleware пропускает только запросы с действующим токеном администратора.
// Нет токена или он невалиден: 401. Роль не ADMIN: 403.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				httpresponse.WriteError(w, log, http.StatusUnauthorized, httpresponse.MsgUnauthorized, nil)
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				reason := "invalid token"
				if errors.Is(err, auth.ErrExpiredToken) {
					reason = "token expired"
				}
				log.Warn("admin authentication failed",
					logger.NewField("reason", reason),
					logger.NewField("path", r.URL.Path),
				)
				httpresponse.WriteError(w, log, http.StatusUnauthorized, httpresponse.MsgUnauthorized, nil)
				return
			}

			if claims.Role != entities.RoleAdmin {
				log.Warn("admin access denied",
					logger.NewField("subject", claims.Subject),
					logger.NewField("role", claims.Role),
				)
				httpresponse.WriteError(w, log, http.StatusForbidden, httpresponse.MsgForbidden, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
