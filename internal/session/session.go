package session

import (
	"sync"
	"time"

	"weekly-task-planner/internal/planner"
	"weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/pkg/scheduler"
)

// Session is one page view of the planner: its view state, its task store and the
// task removals it still has pending. Callers hold the embedded mutex while they
// read or change State so that requests apply in arrival order.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time
	State     planner.ViewState
	Tasks     repository.Repository
	Removals  *scheduler.Scheduler[int]
}

// Close tears the session down; pending removals never fire afterwards.
func (s *Session) Close() {
	s.Removals.Close()
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool {
	return s.Removals.Closed()
}
