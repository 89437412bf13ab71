// Package api exposes the task and list operations over HTTP with a
// uniform JSON response envelope.
package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Meta carries pagination context for collection responses.
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Envelope wraps every response body.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, Envelope{Success: true, Data: data})
}

func writeCollection(w http.ResponseWriter, data any, meta Meta) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Meta: &meta})
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, code, msg string) {
	writeJSON(w, statusCode, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:      code,
			Message:   msg,
			Timestamp: s.clock.Now().UTC(),
		},
	})
}
