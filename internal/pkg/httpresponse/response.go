package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tireshop/internal/generated/dto"
	"tireshop/pkg/logger"
)

const (
	MsgValidationFailed = "Validation failed"
	MsgMalformedBody    = "Malformed request body"
	MsgInternal         = "Internal server error"
	MsgUnauthorized     = "Unauthorized"
	MsgForbidden        = "Forbidden"

	MsgTireNotFound       = "Tire not found"
	MsgTireNotAvailable   = "Tire is not available"
	MsgTireConflict       = "Tire already exists"
	MsgOrderNotFound      = "Order not found"
	MsgInvalidCredentials = "Invalid username or password"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

// WriteError пишет конверт ошибки {message, details}. details == nil сериализуется как null.
func WriteError(w http.ResponseWriter, log errorLogger, status int, message string, details map[string]string) {
	WriteJSON(w, log, status, dto.ErrorResponse{
		Message: message,
		Details: details,
	})
}

func WriteValidationError(w http.ResponseWriter, log errorLogger, details map[string]string) {
	WriteError(w, log, http.StatusBadRequest, MsgValidationFailed, details)
}

func WriteInvalidParameter(w http.ResponseWriter, log errorLogger, name string) {
	WriteError(w, log, http.StatusBadRequest, fmt.Sprintf("Invalid value for parameter: %s", name), nil)
}

func WriteInternalError(w http.ResponseWriter, log errorLogger) {
	WriteError(w, log, http.StatusInternalServerError, MsgInternal, nil)
}
