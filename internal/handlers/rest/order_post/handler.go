package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tireshop/internal/entities"
	"tireshop/internal/generated/dto"
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
	var request dto.CreateOrderRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgMalformedBody, nil)
		return
	}

	orderCreate := entities.OrderCreate{
		TireID:          request.TireId,
		Quantity:        request.Quantity,
		CustomerName:    request.CustomerName,
		Phone:           request.Phone,
		Email:           request.Email,
		DeliveryAddress: request.DeliveryAddress,
		CarModel:        request.CarModel,
		Notes:           request.Notes,
	}
	if request.InstallationOption != nil {
		option := entities.InstallationOption(*request.InstallationOption)
		orderCreate.InstallationOption = &option
	}

	created, err := h.service.CreateOrder(r.Context(), orderCreate)
	if err != nil {
		if fields, ok := validation.Fields(err); ok {
			httpresponse.WriteValidationError(w, h.log, fields)
			return
		}

		switch {
		case errors.Is(err, order.ErrTireNotFound):
			httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgTireNotFound, nil)
		case errors.Is(err, order.ErrTireNotAvailable):
			httpresponse.WriteError(w, h.log, http.StatusConflict, httpresponse.MsgTireNotAvailable, nil)
		default:
			h.log.Error("create order", logger.NewField("error", err))
			httpresponse.WriteInternalError(w, h.log)
		}
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusCreated, dto.CreateOrderResponse{
		OrderId: created.ID,
		Status:  dto.OrderStatus(created.Status),
		Message: order.ConfirmationMessage,
	})
}
