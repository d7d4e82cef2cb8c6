package admin_tire_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tireshop/internal/generated/dto"
	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/pkg/validation"
	"tireshop/internal/service/tire"
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
	var request dto.AdminTireRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgMalformedBody, nil)
		return
	}

	created, err := h.service.CreateTire(r.Context(), presenter.TireModify(request))
	if err != nil {
		if fields, ok := validation.Fields(err); ok {
			httpresponse.WriteValidationError(w, h.log, fields)
			return
		}

		if errors.Is(err, tire.ErrConflict) {
			httpresponse.WriteError(w, h.log, http.StatusConflict, httpresponse.MsgTireConflict, nil)
			return
		}

		h.log.Error("create tire", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	h.log.Info("tire created", logger.NewField("id", created.ID))
	httpresponse.WriteJSON(w, h.log, http.StatusCreated, presenter.AdminTire(*created))
}
