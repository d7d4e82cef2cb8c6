package tire_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httpresponse.WriteInvalidParameter(w, h.log, "id")
		return
	}

	tireEntity, err := h.service.GetTire(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, tire.ErrTireNotFound):
			httpresponse.WriteError(w, h.log, http.StatusNotFound, httpresponse.MsgTireNotFound, nil)
		case errors.Is(err, tire.ErrInvalidTireID):
			httpresponse.WriteInvalidParameter(w, h.log, "id")
		default:
			h.log.Error("get tire", logger.NewField("error", err), logger.NewField("id", id))
			httpresponse.WriteInternalError(w, h.log)
		}
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.Tire(*tireEntity))
}
