package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"weekly-task-planner/internal/planner"
	repo "weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/internal/planner/repository/memory"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/log"
	"weekly-task-planner/pkg/scheduler"
	"weekly-task-planner/pkg/timeslot"
)

// Config bounds the session table.
type Config struct {
	TTL          time.Duration
	MaxSessions  int
	RemovalDelay time.Duration
	SeedExamples bool
}

// Manager owns every open Session. Sessions idle for longer than TTL, or pushed out
// once MaxSessions is reached, are closed.
type Manager struct {
	l        log.Logger
	calendar *datemath.Calendar
	cfg      Config
	now      func() time.Time
	sessions *expirable.LRU[string, *Session]
}

// Option customises a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, used to capture "today" when a session opens.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a session Manager.
func NewManager(l log.Logger, calendar *datemath.Calendar, cfg Config, opts ...Option) *Manager {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}

	m := &Manager{
		l:        l,
		calendar: calendar,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.sessions = expirable.NewLRU[string, *Session](cfg.MaxSessions, m.onEvict, cfg.TTL)
	return m
}

func (m *Manager) onEvict(id string, s *Session) {
	s.Close()
	m.l.Debugf(context.Background(), "session.Manager: closed session %s", id)
}

// Open creates a new Session anchored on today.
func (m *Manager) Open(ctx context.Context) (*Session, error) {
	now := m.now()
	today := m.calendar.StartOfDay(now)

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		State: planner.ViewState{
			Anchor: today,
			Today:  today,
			Draft:  planner.DefaultDraft(),
		},
		Tasks:    memory.New(m.l),
		Removals: scheduler.New[int](m.cfg.RemovalDelay),
	}

	if m.cfg.SeedExamples {
		if err := m.seed(ctx, s); err != nil {
			m.l.Errorf(ctx, "session.Open seed: %v", err)
			return nil, err
		}
	}

	m.sessions.Add(s.ID, s)
	m.l.Infof(ctx, "session.Open: opened session %s for %s", s.ID, datemath.DayKey(today))
	return s, nil
}

// Get returns an open Session and refreshes its idle timer. A session that was
// evicted between the lookup and the refresh is dropped again rather than revived.
func (m *Manager) Get(id string) (*Session, bool) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, false
	}
	if !s.Closed() {
		m.sessions.Add(id, s)
	}
	if s.Closed() {
		m.sessions.Remove(id)
		return nil, false
	}
	return s, true
}

// Close removes and tears down a Session. It reports whether the session was open.
func (m *Manager) Close(ctx context.Context, id string) bool {
	if !m.sessions.Remove(id) {
		return false
	}
	m.l.Infof(ctx, "session.Close: closed session %s", id)
	return true
}

// CloseAll tears down every open Session.
func (m *Manager) CloseAll() {
	m.sessions.Purge()
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Calendar returns the calendar sessions are anchored with.
func (m *Manager) Calendar() *datemath.Calendar {
	return m.calendar
}

var sampleTasks = []planner.AddTaskInput{
	{Title: "Daily work briefing / meeting", StartTime: "10:00 AM", EndTime: "11:00 AM", Color: planner.ColorRed},
	{Title: "Job Finder app wireframe creation", StartTime: "12:00 PM", EndTime: "02:00 PM", Color: planner.ColorBlue},
}

func (m *Manager) seed(ctx context.Context, s *Session) error {
	day := datemath.DayKey(s.State.Today)
	for _, in := range sampleTasks {
		duration, err := timeslot.Duration(in.StartTime, in.EndTime)
		if err != nil {
			return fmt.Errorf("sample %q: %w", in.Title, err)
		}
		if _, err := s.Tasks.CreateTask(ctx, repo.CreateTaskOptions{
			Title:     in.Title,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Duration:  duration,
			Color:     in.Color,
			Date:      day,
		}); err != nil {
			return fmt.Errorf("sample %q: %w", in.Title, err)
		}
	}
	return nil
}
