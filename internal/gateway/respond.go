// ABOUTME: JSON response helpers and upstream error mirroring shared by
// ABOUTME: every gateway handler.

package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/selector"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError maps a handler error to a response: provider status
// errors are mirrored with their upstream status and body, missing-key and
// unknown-session errors get their conventional codes, everything else is
// a 500.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var statusErr *provider.StatusError
	switch {
	case errors.As(err, &statusErr):
		writeError(w, statusErr.StatusCode, statusErr.Body)
	case errors.Is(err, provider.ErrNoAPIKey):
		writeError(w, http.StatusInternalServerError, "No API key configured")
	case errors.Is(err, provider.ErrNoTranscriptionKey):
		writeError(w, http.StatusInternalServerError, "Transcription API key not configured")
	case errors.Is(err, selector.ErrUnknownSessionType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody decodes a JSON request body into v. A missing body is treated
// as the empty object.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
