package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrSessionNotFound = errors.New("planner session not found")
	ErrInvalidDate     = errors.New("invalid day key")
	ErrInvalidTime     = errors.New("invalid clock time")
	ErrUnknownPicker   = errors.New("unknown picker")
)
