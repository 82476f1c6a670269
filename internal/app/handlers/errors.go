package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/logger"
)

//easyjson:json
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// PrepareError translates a failure into the caller-visible status and
// message. Typed failures keep their kind; anything else is an internal error.
func PrepareError(w http.ResponseWriter, err error) {
	var codeErr appErrors.ResponseCodeError
	logger.Log.Error("request failed: ", zap.Error(err))
	if errors.As(err, &codeErr) {
		WriteJSONErrorResponse(w, codeErr.Msg(), codeErr.Code())
		return
	}
	// Default error handling
	WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
}

func WriteJSONErrorResponse(w http.ResponseWriter, message string, code int) {
	er := ErrorResponse{
		Message: message,
		Code:    code,
	}
	w.Header().Set("Content-Type", "application/json")
	json, err := ErrorResponse.MarshalJSON(er)
	if err != nil {
		logger.Log.Error("failed to marshal error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(json)
}
