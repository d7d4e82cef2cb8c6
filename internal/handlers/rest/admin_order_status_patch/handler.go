package admin_order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tireshop/internal/entities"
	"tireshop/internal/generated/dto"
	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/auth"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/pkg/validation"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httpresponse.WriteInvalidParameter(w, h.log, "id")
		return
	}

	var request dto.UpdateOrderStatusRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgMalformedBody, nil)
		return
	}

	var status *entities.OrderStatusType
	if request.Status != nil {
		value := entities.OrderStatusType(*request.Status)
		status = &value
	}

	updated, err := h.service.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		if fields, ok := validation.Fields(err); ok {
			httpresponse.WriteValidationError(w, h.log, fields)
			return
		}

		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			httpresponse.WriteInvalidParameter(w, h.log, "id")
		case errors.Is(err, order.ErrInvalidStatus):
			httpresponse.WriteValidationError(w, h.log, map[string]string{"status": validation.MsgInvalid})
		case errors.Is(err, order.ErrOrderNotFound):
			httpresponse.WriteError(w, h.log, http.StatusNotFound, httpresponse.MsgOrderNotFound, nil)
		default:
			h.log.Error("update order status", logger.NewField("error", err), logger.NewField("id", id))
			httpresponse.WriteInternalError(w, h.log)
		}
		return
	}

	// subject токена кладёт admin_auth.Middleware
	var admin string
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		admin = claims.Subject
	}

	h.log.Info("order status updated",
		logger.NewField("id", updated.ID),
		logger.NewField("status", updated.Status.String()),
		logger.NewField("admin", admin),
	)
	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.AdminOrder(*updated))
}
