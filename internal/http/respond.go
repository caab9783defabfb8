package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/vmihailenco/msgpack/v5"
)

const msgpackContentType = "application/msgpack"

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), msgpackContentType)
}

// writeResponse encodes v as JSON, or as msgpack when the client asks for it.
// Both encodings use the json field names.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsMsgpack(r) {
		w.Header().Set("Content-Type", msgpackContentType)
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			log.Error("Failed to encode msgpack response", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError maps store errors onto status codes. Unexpected errors are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"
	switch {
	case errors.Is(err, club.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, club.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, club.ErrInUse):
		status, msg = http.StatusConflict, err.Error()
	default:
		log.Error("Request failed", "method", r.Method, "url", r.URL.String(), "error", err)
	}
	writeResponse(w, r, status, errorResponse{Error: msg})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(club.ErrInvalidInput, err)
	}
	return nil
}
