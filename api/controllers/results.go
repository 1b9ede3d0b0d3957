package controllers

import (
	"errors"
	"net/http"

	"Courtside/api/bracket"
)

type resultInput struct {
	Score1 *int `json:"score1" binding:"required"`
	Score2 *int `json:"score2" binding:"required"`
}

// resultErrorStatus maps bracket errors to HTTP statuses.
func resultErrorStatus(err error) int {
	switch {
	case errors.Is(err, bracket.ErrInvalidResult):
		return http.StatusBadRequest
	case errors.Is(err, bracket.ErrUnknownMatch):
		return http.StatusNotFound
	case errors.Is(err, bracket.ErrByeMatch),
		errors.Is(err, bracket.ErrMatchNotReady),
		errors.Is(err, bracket.ErrResultLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func resultOutcome(err error) string {
	switch {
	case errors.Is(err, bracket.ErrInvalidResult):
		return "invalid"
	case errors.Is(err, bracket.ErrUnknownMatch):
		return "unknown_match"
	case errors.Is(err, bracket.ErrByeMatch):
		return "bye"
	case errors.Is(err, bracket.ErrMatchNotReady):
		return "not_ready"
	case errors.Is(err, bracket.ErrResultLocked):
		return "locked"
	default:
		return "error"
	}
}
