package memory

import (
	"fmt"
	"sync"

	"weekly-task-planner/internal/planner"
	"weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/pkg/log"
)

// implRepository keeps tasks as one flat list in insertion order. Ids come from a
// counter that only grows, so an id is never handed out twice even after removals.
type implRepository struct {
	mu     sync.RWMutex
	tasks  []planner.Task
	lastID int
	l      log.Logger
}

// New creates a new in-memory Repository for the planner domain.
func New(l log.Logger) repository.Repository {
	if l == nil {
		panic("planner/repository/memory: logger is required")
	}
	return &implRepository{l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/memory.%s", method)
}

// indexOf must be called with r.mu held.
func (r *implRepository) indexOf(id int) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
