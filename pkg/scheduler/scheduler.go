// Package scheduler runs keyed, cancellable actions after a fixed delay.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler holds at most one pending action per key. Close stops every pending
// action and turns later Schedule calls into no-ops.
type Scheduler[K comparable] struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[K]*time.Timer
	closed  bool
}

// New creates a Scheduler whose actions fire after delay.
func New[K comparable](delay time.Duration) *Scheduler[K] {
	if delay < 0 {
		delay = 0
	}
	return &Scheduler[K]{
		delay:   delay,
		pending: make(map[K]*time.Timer),
	}
}

// Delay returns the configured delay.
func (s *Scheduler[K]) Delay() time.Duration {
	return s.delay
}

// Schedule arranges fn to run once after the delay. It returns false, without
// scheduling, when key already has a pending action or the scheduler is closed.
func (s *Scheduler[K]) Schedule(key K, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.pending[key]; ok {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		current, ok := s.pending[key]
		if !ok || current != timer || s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()

		fn()
	})
	s.pending[key] = timer
	return true
}

// Closed reports whether Close has been called.
func (s *Scheduler[K]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of pending actions.
func (s *Scheduler[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close cancels every pending action. It is safe to call more than once.
func (s *Scheduler[K]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for key, timer := range s.pending {
		timer.Stop()
		delete(s.pending, key)
	}
}
