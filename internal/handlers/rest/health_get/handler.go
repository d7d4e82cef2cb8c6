package health_get

import (
	"context"
	"net/http"
	"time"

	"tireshop/internal/generated/dto"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/pkg/logger"
)

const (
	pingTimeout     = 2 * time.Second
	msgDatabaseDown = "Database is unavailable"
)

type Handler struct {
	log    handlerLogger
	pinger Pinger
	now    func() time.Time
}

func New(log handlerLogger, pinger Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		pinger: pinger,
		now:    time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	err := h.pinger.Ping(ctx)
	if err != nil {
		h.log.Warn("health check: database ping failed", logger.NewField("error", err))

		message := msgDatabaseDown
		httpresponse.WriteJSON(w, h.log, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:    dto.HealthResponseStatusDOWN,
			Db:        dto.HealthResponseDbDOWN,
			Message:   &message,
			Timestamp: h.now().UTC(),
		})
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, dto.HealthResponse{
		Status:    dto.HealthResponseStatusUP,
		Db:        dto.HealthResponseDbUP,
		Timestamp: h.now().UTC(),
	})
}
