package api

import (
	"errors"
	"net/http"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// Stable machine-readable error codes carried in the envelope.
const (
	codeInvalidInput  = "invalid_input"
	codeNotFound      = "not_found"
	codeListNotFound  = "list_not_found"
	codeDuplicateName = "duplicate_list_name"
	codeListNotEmpty  = "list_not_empty"
	codeInternal      = "internal_error"
)

// writeErr maps domain errors onto HTTP status codes and envelope codes.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		s.writeError(w, http.StatusUnprocessableEntity, codeInvalidInput, err.Error())
	case errors.Is(err, domain.ErrListNotFound):
		s.writeError(w, http.StatusNotFound, codeListNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateListName):
		s.writeError(w, http.StatusConflict, codeDuplicateName, err.Error())
	case errors.Is(err, domain.ErrListNotEmpty):
		s.writeError(w, http.StatusConflict, codeListNotEmpty, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

func (s *Server) writeNotFound(w http.ResponseWriter, msg string) {
	s.writeError(w, http.StatusNotFound, codeNotFound, msg)
}

func (s *Server) writeInvalid(w http.ResponseWriter, msg string) {
	s.writeError(w, http.StatusUnprocessableEntity, codeInvalidInput, msg)
}
