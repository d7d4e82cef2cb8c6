package admin_tires_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entities.TireFilter{
		Brand:  optionalParam(query.Get("brand")),
		Series: optionalParam(query.Get("series")),
		Size:   optionalParam(query.Get("size")),
	}
	if raw := query.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httpresponse.WriteInvalidParameter(w, h.log, "active")
			return
		}
		filter.Active = &active
	}

	tires, err := h.service.SearchTires(r.Context(), filter)
	if err != nil {
		h.log.Error("search tires", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, presenter.AdminTireList(tires))
}

func optionalParam(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
