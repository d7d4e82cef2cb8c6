package tires_get

import (
	"net/http"
	"strconv"

	"tireshop/internal/entities"
	"tireshop/internal/handlers/rest/presenter"
	"tireshop/internal/pkg/httpresponse"
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

// ServeHTTP отдает каталог витрины. Без параметра и при active=true только активные шины, active=false весь каталог.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			httpresponse.WriteInvalidParameter(w, h.log, "active")
			return
		}
		activeOnly = parsed
	}

	var (
		tires []entities.Tire
		err   error
	)
	if activeOnly {
		tires, err = h.service.GetActiveTires(r.Context())
	} else {
		tires, err = h.service.GetAllTires(r.Context())
	}
	if err != nil {
		h.log.Error("list tires", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.TireList(tires))
}
