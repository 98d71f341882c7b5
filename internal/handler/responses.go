package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Outcome and player bodies are a few hundred bytes; encode buffers are reused
var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceError maps domain errors to an HTTP status and a user-facing message.
// Anything unrecognised is a storage or programming failure and stays opaque.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrWeaponNotFound):
		return http.StatusNotFound, ErrMsgWeaponNotFoundError
	case errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound, ErrMsgInventoryNotFoundError
	case errors.Is(err, domain.ErrPlayerAlreadyExists):
		return http.StatusBadRequest, ErrMsgAlreadyRegisteredError
	case errors.Is(err, domain.ErrUnsupportedItemType):
		return http.StatusBadRequest, ErrMsgUnsupportedItemError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUpgradeBusy), errors.Is(err, domain.ErrLockTimeout):
		return http.StatusServiceUnavailable, ErrMsgUpgradeBusyError
	case errors.Is(err, domain.ErrServiceShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
