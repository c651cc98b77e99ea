package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/socialpulse/backend/validation"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeValidationErrors(w http.ResponseWriter, errs []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}

// writeServerError logs the cause for operators and sends the client a
// generic message. Internal error detail never reaches the response.
func writeServerError(w http.ResponseWriter, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("database operation failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": message})
}

// decodeBody decodes the JSON request body into v. On failure it writes
// the 400 response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeValidationErrors(w, []validation.FieldError{
			{Field: "body", Message: "must be valid JSON"},
		})
		return false
	}
	return true
}
