package promotion_fees_get

import (
	"net/http"

	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.FeeSchedule(h.service.Fees()))
}
