package usecase

import (
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	pkgLog "weekly-task-planner/pkg/log"
)

// DefaultYearRadius is how many years either side of the anchor the year picker lists.
const DefaultYearRadius = 10

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	sessions   *session.Manager
	calendar   *datemath.Calendar
	yearRadius int
}

// New creates a new planner UseCase instance. A yearRadius below 1 falls back to
// DefaultYearRadius; config.Load rejects such values before they get here.
func New(l pkgLog.Logger, sessions *session.Manager, yearRadius int) *implUseCase {
	if yearRadius <= 0 {
		yearRadius = DefaultYearRadius
	}
	return &implUseCase{
		l:          l,
		sessions:   sessions,
		calendar:   sessions.Calendar(),
		yearRadius: yearRadius,
	}
}
