package promotions_get

import (
	"errors"
	"net/http"
	"strings"

	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/service/promotion"
	"tireshop/pkg/logger"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	width := strings.TrimSpace(r.URL.Query().Get("width"))

	offers, err := h.service.ListOffers(r.Context(), width)
	if err != nil {
		if errors.Is(err, promotion.ErrInvalidWidth) {
			httpresponse.WriteInvalidParameter(w, h.log, "width")
			return
		}
		h.log.Error("list promotions", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.PromotionList(offers))
}
