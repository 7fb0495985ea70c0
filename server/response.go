package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/filter"
	"github.com/solset/stringlens/nlq"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// readJSON reads and decodes a JSON request body
func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return err
	}
	return nil
}

// writeDomainError maps sentinel and parse errors onto HTTP status codes.
// Anything unrecognized is treated as an internal error and logged.
func writeDomainError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var upe *nlq.UnparsablePhraseError
	var ipe *filter.InvalidPredicateError

	switch {
	case errors.IsConflictError(err):
		writeError(w, http.StatusConflict, err.Error())
	case errors.IsNotFoundError(err):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &upe):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":              upe.Error(),
			"unparsed_fragments": upe.Fragments,
		})
	case errors.As(err, &ipe):
		writeError(w, http.StatusBadRequest, ipe.Error())
	case errors.IsInvalidRequestError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		if logger != nil {
			logger.Errorw("Request failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
