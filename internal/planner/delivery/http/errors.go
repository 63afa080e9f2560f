package http

import (
	"errors"
	"net/http"

	"weekly-task-planner/internal/planner"
	pkgErrors "weekly-task-planner/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery      = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query")
	errInvalidTaskID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
	errTimeNotOnLadder = pkgErrors.NewHTTPError(http.StatusBadRequest, "time must be one of the offered slots")
	errInvalidColor    = pkgErrors.NewHTTPError(http.StatusBadRequest, "color must be red, blue or yellow")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "title is required")
	case errors.Is(err, planner.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "planner session not found")
	case errors.Is(err, planner.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	case errors.Is(err, planner.ErrInvalidTime):
		return errTimeNotOnLadder
	case errors.Is(err, planner.ErrUnknownPicker):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown picker")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
