package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/logger"
)

type errorResponse struct {
	Error   errors.Kind `json:"error"`
	Message string      `json:"message"`
}

// WriteError renders err as a JSON rejection with its stable category.
// Unrecognized errors default to a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	kind := errors.KindOf(err)
	message := err.Error()
	if kind == errors.KindInternal {
		message = "Internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: kind, Message: message})
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate parses a JSON request body into body and checks its
// validation tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return errors.New(errors.KindValidation, "Body is invalid json", http.StatusBadRequest)
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body validation failed", "error", err)
		return errors.New(errors.KindValidation, "Please check your input and try again", http.StatusBadRequest)
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return errors.New(errors.KindValidation, "Body is invalid json", http.StatusBadRequest)
	}
	return nil
}
