package admin_tire_active_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httpresponse.WriteInvalidParameter(w, h.log, "id")
		return
	}

	var request dto.UpdateTireStatusRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgMalformedBody, nil)
		return
	}

	updated, err := h.service.UpdateActiveStatus(r.Context(), id, request.IsActive)
	if err != nil {
		if fields, ok := validation.Fields(err); ok {
			httpresponse.WriteValidationError(w, h.log, fields)
			return
		}

		switch {
		case errors.Is(err, tire.ErrInvalidTireID):
			httpresponse.WriteInvalidParameter(w, h.log, "id")
		case errors.Is(err, tire.ErrTireNotFound):
			httpresponse.WriteError(w, h.log, http.StatusNotFound, httpresponse.MsgTireNotFound, nil)
		default:
			h.log.Error("update tire status", logger.NewField("error", err), logger.NewField("id", id))
			httpresponse.WriteInternalError(w, h.log)
		}
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.AdminTire(*updated))
}
