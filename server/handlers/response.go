package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	CODE_INVALID_REQUEST = "INVALID_REQUEST"
	CODE_NOT_FOUND       = "NOT_FOUND"
	CODE_INTERNAL        = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Error encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, code, message string) {
	writeJSON(w, logger, status, ErrorResponse{Code: code, Message: message})
}
