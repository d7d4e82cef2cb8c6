package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"tireshop/internal/generated/dto"
)

const msgShuttingDown = "Service is shutting down"

// Middleware отклоняет новые запросы с 503, когда сервер начал остановку.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Message: msgShuttingDown})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
