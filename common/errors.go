package common

import (
	"encoding/json"
	"go-user-api/logger"
	"go-user-api/mediator"
	"net/http"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	Code    int                          `json:"code"`
	Message string                       `json:"message"`
	Errors  []mediator.ValidationFailure `json:"errors,omitempty"`
	Err     error                        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationAppError builds a 400 response carrying the field-level
// failure list from a short-circuited dispatch.
func NewValidationAppError(validationErr *mediator.ValidationError) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  validationErr.Failures,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
