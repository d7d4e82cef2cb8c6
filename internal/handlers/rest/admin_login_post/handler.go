package admin_login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tireshop/internal/generated/dto"
	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/pkg/validation"
	"tireshop/internal/service/admin"
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
	var request dto.AdminLoginRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		httpresponse.WriteError(w, h.log, http.StatusBadRequest, httpresponse.MsgMalformedBody, nil)
		return
	}

	token, err := h.service.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		if fields, ok := validation.Fields(err); ok {
			httpresponse.WriteValidationError(w, h.log, fields)
			return
		}

		if errors.Is(err, admin.ErrInvalidCredentials) {
			h.log.Warn("admin login failed")
			httpresponse.WriteError(w, h.log, http.StatusUnauthorized, httpresponse.MsgInvalidCredentials, nil)
			return
		}

		h.log.Error("admin login", logger.NewField("error", err))
		httpresponse.WriteInternalError(w, h.log)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, dto.AdminLoginResponse{
		Token:            token.Token,
		ExpiresInSeconds: int64(token.ExpiresIn.Seconds()),
	})
}
