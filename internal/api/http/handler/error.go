package handler

import (
	"errors"
	"net/http"

	"github.com/uptalent/uptalent-server/internal/model"
)

// handleError maps business errors to HTTP statuses and writes the
// fixed {"message": ...} body.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case IsValidationError(err), errors.Is(err, model.ErrEmptySkills):
		writeJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
	case errors.Is(err, model.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, Response{Message: err.Error()})
	case errors.Is(err, model.ErrAccessDenied):
		writeJSON(w, http.StatusForbidden, Response{Message: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Response{Message: err.Error()})
	case errors.Is(err, model.ErrTalentExists):
		writeJSON(w, http.StatusConflict, Response{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, Response{Message: "internal server error"})
	}
}
