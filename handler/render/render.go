package render

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// UnknownError details reported when an error carries no message
const UnknownError = "Unknown error"

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	Status(w, http.StatusOK, v)
}

// Status render json with status code
func Status(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}

// Error write {error, details}
func Error(w http.ResponseWriter, statusCode int, msg string, err error) {
	details := UnknownError
	if err != nil && err.Error() != "" {
		details = err.Error()
	}

	Status(w, statusCode, H{"error": msg, "details": details})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, "bad request", err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, "not found", err)
}

// InternalError internal server error
func InternalError(w http.ResponseWriter, msg string, err error) {
	Error(w, http.StatusInternalServerError, msg, err)
}
