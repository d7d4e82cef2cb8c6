package admin_orders_get

import (
	"errors"
	"net/http"

	"tireshop/internal/entities"
	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/service/order"
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
	query := r.URL.Query()

	var filter entities.OrderFilter
	if raw := query.Get("status"); raw != "" {
		status := entities.OrderStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("keyword"); raw != "" {
		filter.Keyword = &raw
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			httpresponse.WriteInvalidParameter(w, h.log, "status")
			return
		}

		h.log.Error("list orders", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.AdminOrderList(orders))
}
