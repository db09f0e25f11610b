package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithSuccess(w http.ResponseWriter, code int, message string, data any) {
	RespondWithJSON(w, code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{
		Success: false,
		Message: message,
	})
}

// RespondWithFailure reports a failed operation together with the reason it
// failed.
func RespondWithFailure(w http.ResponseWriter, code int, message, detail string) {
	RespondWithJSON(w, code, Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

func RespondWithValidationErrors(w http.ResponseWriter, message string, errors map[string][]string) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
