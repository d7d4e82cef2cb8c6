package cors

import (
	"net/http"

	chicors "github.com/go-chi/cors"
)

// Middleware разрешает витрине и админке ходить в API с указанных origin.
// Оборачивает весь роутер: preflight OPTIONS не доходит до middleware gorilla на несовпавших маршрутах.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
