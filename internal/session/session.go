// Package session holds the state of one board: the task service plus the
// current search term and filter. It is the event surface shared by the
// CLI commands, the shell and the TUI.
package session

import (
	"context"
	"log/slog"
	"time"

	"taskflow/internal/filter"
	"taskflow/internal/service"
)

// Session owns the search term and the active filter for a task service.
// It is not safe for concurrent use.
type Session struct {
	svc    service.Service
	log    *slog.Logger
	now    func() time.Time
	today  string // fixed date, overrides now when set
	search string
	key    filter.Key

	memo *viewMemo
}

type viewMemo struct {
	version uint64
	search  string
	key     filter.Key
	today   string
	tasks   []service.Task
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithToday pins "today" to a fixed YYYY-MM-DD date.
func WithToday(day string) Option {
	return func(s *Session) { s.today = day }
}

// WithLogger sets the logger. A nil logger keeps the default, which
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a session over svc with an empty search and the "all" filter.
func New(svc service.Service, opts ...Option) *Session {
	s := &Session{
		svc: svc,
		now: time.Now,
		key: filter.All,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Service returns the underlying task service.
func (s *Session) Service() service.Service { return s.svc }

// Today returns the current local date as YYYY-MM-DD.
func (s *Session) Today() string {
	if s.today != "" {
		return s.today
	}
	return service.Today(s.now())
}

// SearchTerm returns the current search term.
func (s *Session) SearchTerm() string { return s.search }

// SetSearchTerm replaces the search term.
func (s *Session) SetSearchTerm(term string) {
	s.search = term
	s.log.Debug("search term set", "term", term)
}

// Filter returns the active filter.
func (s *Session) Filter() filter.Key { return s.key }

// SetFilter replaces the active filter. Unknown keys are kept as given and
// behave like "all" when applied.
func (s *Session) SetFilter(k filter.Key) {
	s.key = k
	s.log.Debug("filter set", "filter", string(k))
}

// Narrowed reports whether a search term or a non-default filter is active.
func (s *Session) Narrowed() bool {
	return s.search != "" || s.key != filter.All
}

// Tasks returns every task in store order.
func (s *Session) Tasks(ctx context.Context) ([]service.Task, error) {
	return s.svc.ListTasks(ctx)
}

// Visible returns the tasks matching the current search and filter.
// When the service is versioned the result is reused until the store,
// search term, filter or date changes.
func (s *Session) Visible(ctx context.Context) ([]service.Task, error) {
	today := s.Today()
	v, versioned := s.svc.(service.Versioned)
	if versioned && s.memo != nil {
		m := s.memo
		if m.version == v.Version() && m.search == s.search && m.key == s.key && m.today == today {
			return cloneAll(m.tasks), nil
		}
	}

	var version uint64
	if versioned {
		version = v.Version()
	}
	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	visible := filter.Apply(tasks, s.search, s.key, today)
	if versioned {
		s.memo = &viewMemo{version: version, search: s.search, key: s.key, today: today, tasks: visible}
	}
	return cloneAll(visible), nil
}

// Stats recomputes the board statistics over all tasks.
func (s *Session) Stats(ctx context.Context) (filter.Stats, error) {
	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		return filter.Stats{}, err
	}
	return filter.ComputeStats(tasks, s.Today()), nil
}

// Create adds a task built from d.
func (s *Session) Create(ctx context.Context, d service.Draft) (service.Task, error) {
	t, err := s.svc.CreateTask(ctx, d)
	if err != nil {
		return service.Task{}, err
	}
	s.log.Debug("task created", "id", t.ID, "title", t.Title)
	return t, nil
}

// Update merges p into the task with the given id.
func (s *Session) Update(ctx context.Context, id int64, p service.Patch) (service.Task, error) {
	t, err := s.svc.UpdateTask(ctx, id, p)
	if err != nil {
		return service.Task{}, err
	}
	s.log.Debug("task updated", "id", id)
	return t, nil
}

// Delete removes the task with the given id.
func (s *Session) Delete(ctx context.Context, id int64) error {
	if err := s.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.log.Debug("task deleted", "id", id)
	return nil
}

// SetStatus changes the status of the task with the given id.
func (s *Session) SetStatus(ctx context.Context, id int64, status service.Status) error {
	if err := s.svc.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Debug("status changed", "id", id, "status", string(status))
	return nil
}

// EmptyHint returns the hint shown under "no tasks found".
func (s *Session) EmptyHint() string {
	if s.Narrowed() {
		return "Try adjusting your search or filter criteria"
	}
	return "Get started by creating your first task"
}

func cloneAll(tasks []service.Task) []service.Task {
	out := make([]service.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
