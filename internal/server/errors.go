package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-coach/internal/session"
)

// httpStatus maps session lifecycle errors to status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrResumeNotUploaded),
		errors.Is(err, session.ErrJDNotAnalyzed),
		errors.Is(err, session.ErrInterviewNotStarted),
		errors.Is(err, session.ErrNoQuestionPending):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
