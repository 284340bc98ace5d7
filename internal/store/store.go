// Package store holds the dashboard's mutable application state: tasks,
// events, users, the theme flag and the active tab. Views read from it and
// request mutations through its methods; nothing else owns state.
//
// A Store is used from the Bubble Tea update loop only and is not safe for
// concurrent use.
package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dashd/internal/model"
)

// Source supplies the initial collections.
type Source interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type Snapshot struct {
	Tasks  []model.Task
	Events []model.Event
	Users  []model.User
	Theme  model.Theme
	Tab    model.Tab
}

type Store struct {
	tasks  []model.Task
	events []model.Event
	users  []model.User
	theme  model.Theme
	active model.Tab
	now    func() time.Time
	logger *log.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithTheme(t model.Theme) Option {
	return func(s *Store) {
		if t.IsValid() {
			s.theme = t
		}
	}
}

func WithTab(t model.Tab) Option {
	return func(s *Store) {
		if t.IsValid() {
			s.active = t
		}
	}
}

// New loads the collections from src.
func New(ctx context.Context, src Source, opts ...Option) (*Store, error) {
	tasks, err := src.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	events, err := src.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	users, err := src.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return FromSnapshot(Snapshot{Tasks: tasks, Events: events, Users: users}, opts...)
}

// FromSnapshot builds a store from in-memory collections. Ids must be
// unique within each collection.
func FromSnapshot(snap Snapshot, opts ...Option) (*Store, error) {
	if err := checkUnique(snap); err != nil {
		return nil, err
	}
	s := &Store{
		tasks:  append([]model.Task(nil), snap.Tasks...),
		events: append([]model.Event(nil), snap.Events...),
		users:  append([]model.User(nil), snap.Users...),
		theme:  model.ThemeLight,
		active: model.TabDashboard,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	if snap.Theme.IsValid() {
		s.theme = snap.Theme
	}
	if snap.Tab.IsValid() {
		s.active = snap.Tab
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func checkUnique(snap Snapshot) error {
	seenTask := make(map[int]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seenTask[t.ID] {
			return fmt.Errorf("store: duplicate task id %d", t.ID)
		}
		seenTask[t.ID] = true
	}
	seenEvent := make(map[int64]bool, len(snap.Events))
	for _, e := range snap.Events {
		if seenEvent[e.ID] {
			return fmt.Errorf("store: duplicate event id %d", e.ID)
		}
		seenEvent[e.ID] = true
	}
	seenUser := make(map[int]bool, len(snap.Users))
	for _, u := range snap.Users {
		if seenUser[u.ID] {
			return fmt.Errorf("store: duplicate user id %d", u.ID)
		}
		seenUser[u.ID] = true
	}
	return nil
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Tasks:  s.Tasks(),
		Events: s.Events(),
		Users:  s.Users(),
		Theme:  s.theme,
		Tab:    s.active,
	}
}

func (s *Store) Theme() model.Theme   { return s.theme }
func (s *Store) ActiveTab() model.Tab { return s.active }

func (s *Store) Tasks() []model.Task   { return append([]model.Task(nil), s.tasks...) }
func (s *Store) Events() []model.Event { return append([]model.Event(nil), s.events...) }
func (s *Store) Users() []model.User   { return append([]model.User(nil), s.users...) }

// TasksIn returns the tasks in one column, in collection order.
func (s *Store) TasksIn(status model.Status) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Task(id int) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
