package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	// Code is the upstream Torn error code, passed through verbatim when present
	Code int `json:"code,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still produce a clean 500
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

// respondError maps err to a status and a user-facing message
func respondError(w http.ResponseWriter, err error) {
	status, resp := mapError(err)
	respondJSON(w, status, resp)
}
