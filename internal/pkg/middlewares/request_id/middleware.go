package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderName = "X-Request-ID"

const maxIncomingLen = 64

type ctxKey struct{}

// Middleware присваивает запросу идентификатор. Входящий X-Request-ID сохраняется, если он разумной длины.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderName)
			if id == "" || len(id) > maxIncomingLen {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderName, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		})
	}
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
