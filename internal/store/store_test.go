package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/storage"
)

func seedSnapshot() Snapshot {
	return Snapshot{
		Tasks: []model.Task{
			{ID: 1, Title: "Task 1", Status: model.StatusTodo, Priority: model.PriorityHigh},
			{ID: 2, Title: "Task 2", Status: model.StatusProgress, Priority: model.PriorityMedium},
			{ID: 3, Title: "Task 3", Status: model.StatusDone, Priority: model.PriorityLow},
		},
		Events: []model.Event{
			{ID: 1, Title: "Meeting", Date: "2025-06-10", Time: "10:00"},
			{ID: 2, Title: "Project Review", Date: "2025-06-12", Time: "14:00"},
		},
		Users: []model.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin, Status: model.UserActive},
		},
	}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := FromSnapshot(seedSnapshot(), opts...)
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}
	return s
}

func statuses(s *Store) map[int]model.Status {
	out := make(map[int]model.Status)
	for _, task := range s.Tasks() {
		out[task.ID] = task.Status
	}
	return out
}

func TestDefaults(t *testing.T) {
	s := newTestStore(t)
	if s.Theme() != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", s.Theme())
	}
	if s.ActiveTab() != model.TabDashboard {
		t.Fatalf("expected dashboard tab, got %q", s.ActiveTab())
	}
	s = newTestStore(t, WithTheme(model.ThemeDark), WithTab(model.TabKanban), WithTab(model.Tab("bogus")))
	if s.Theme() != model.ThemeDark || s.ActiveTab() != model.TabKanban {
		t.Fatalf("options not applied: %q %q", s.Theme(), s.ActiveTab())
	}
}

func TestToggleThemeTwiceRestores(t *testing.T) {
	s := newTestStore(t)
	start := s.Theme()
	if got := s.ToggleTheme(); got != model.ThemeDark {
		t.Fatalf("expected dark after first toggle, got %q", got)
	}
	if got := s.ToggleTheme(); got != start {
		t.Fatalf("expected %q after second toggle, got %q", start, got)
	}
}

func TestSelectTab(t *testing.T) {
	s := newTestStore(t)
	for _, tab := range model.Tabs {
		if !s.Select(tab) || s.ActiveTab() != tab {
			t.Fatalf("select %q failed, active=%q", tab, s.ActiveTab())
		}
	}
	if s.Select(model.Tab("reports")) {
		t.Fatal("expected unknown tab to be rejected")
	}
	if s.ActiveTab() != model.TabKanban {
		t.Fatalf("expected active tab unchanged, got %q", s.ActiveTab())
	}
}

func TestMoveTaskSeedScenarios(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.MoveTask(1, model.DirectionRight); !ok {
		t.Fatal("expected task 1 to move right")
	}
	got := statuses(s)
	want := map[int]model.Status{1: model.StatusProgress, 2: model.StatusProgress, 3: model.StatusDone}
	for id, st := range want {
		if got[id] != st {
			t.Fatalf("after moving 1 right: task %d is %q, want %q", id, got[id], st)
		}
	}

	s = newTestStore(t)
	if _, ok := s.MoveTask(3, model.DirectionLeft); !ok {
		t.Fatal("expected task 3 to move left")
	}
	got = statuses(s)
	want = map[int]model.Status{1: model.StatusTodo, 2: model.StatusProgress, 3: model.StatusProgress}
	for id, st := range want {
		if got[id] != st {
			t.Fatalf("after moving 3 left: task %d is %q, want %q", id, got[id], st)
		}
	}
}

func TestMoveTaskClampsAndRoundTrips(t *testing.T) {
	s := newTestStore(t)
	if task, ok := s.MoveTask(1, model.DirectionLeft); ok || task.Status != model.StatusTodo {
		t.Fatalf("expected todo to stay put, got %+v ok=%v", task, ok)
	}
	if task, ok := s.MoveTask(3, model.DirectionRight); ok || task.Status != model.StatusDone {
		t.Fatalf("expected done to stay put, got %+v ok=%v", task, ok)
	}
	if _, ok := s.MoveTask(42, model.DirectionRight); ok {
		t.Fatal("expected unknown task to be rejected")
	}

	s.MoveTask(2, model.DirectionRight)
	s.MoveTask(2, model.DirectionLeft)
	if task, _ := s.Task(2); task.Status != model.StatusProgress {
		t.Fatalf("expected round trip to restore progress, got %q", task.Status)
	}
}

func TestTasksInColumn(t *testing.T) {
	s := newTestStore(t)
	s.MoveTask(1, model.DirectionRight)
	progress := s.TasksIn(model.StatusProgress)
	if len(progress) != 2 || progress[0].ID != 1 || progress[1].ID != 2 {
		t.Fatalf("unexpected progress column: %#v", progress)
	}
	if len(s.TasksIn(model.StatusTodo)) != 0 {
		t.Fatal("expected empty todo column")
	}
}

func TestAddEventAppendsOne(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return at }))
	before := len(s.Events())

	ev, ok := s.AddEvent(model.EventDraft{Title: "Standup", Date: "2025-06-15", Time: "09:00"})
	if !ok {
		t.Fatal("expected event to be added")
	}
	events := s.Events()
	if len(events) != before+1 {
		t.Fatalf("expected %d events, got %d", before+1, len(events))
	}
	last := events[len(events)-1]
	if last != ev || ev.Title != "Standup" || ev.Date != "2025-06-15" || ev.Time != "09:00" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ID != at.UnixMilli() {
		t.Fatalf("expected clock-derived id %d, got %d", at.UnixMilli(), ev.ID)
	}
}

func TestAddEventIDsNeverCollide(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return at }))
	seen := make(map[int64]bool)
	for _, e := range s.Events() {
		seen[e.ID] = true
	}
	for i := 0; i < 5; i++ {
		ev, ok := s.AddEvent(model.EventDraft{Title: "Same instant", Date: "d", Time: "t"})
		if !ok {
			t.Fatal("expected event to be added")
		}
		if seen[ev.ID] {
			t.Fatalf("id %d collided", ev.ID)
		}
		seen[ev.ID] = true
	}
}

func TestAddEventRejectsMissingFields(t *testing.T) {
	s := newTestStore(t)
	before := s.Events()
	for _, draft := range []model.EventDraft{
		{Title: "", Date: "2025-06-15", Time: "09:00"},
		{Title: "Standup", Date: " ", Time: "09:00"},
		{Title: "Standup", Date: "2025-06-15"},
	} {
		if _, ok := s.AddEvent(draft); ok {
			t.Fatalf("expected draft %+v to be rejected", draft)
		}
	}
	if len(s.Events()) != len(before) {
		t.Fatalf("expected events unchanged, got %d", len(s.Events()))
	}
}

func TestAddEventTrimsFields(t *testing.T) {
	s := newTestStore(t)
	ev, ok := s.AddEvent(model.EventDraft{Title: "  Retro ", Date: " 2025-06-20", Time: "16:00 "})
	if !ok || ev.Title != "Retro" || ev.Date != "2025-06-20" || ev.Time != "16:00" {
		t.Fatalf("unexpected event: %+v ok=%v", ev, ok)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	tasks := s.Tasks()
	tasks[0].Status = model.StatusDone
	if task, _ := s.Task(1); task.Status != model.StatusTodo {
		t.Fatal("mutating a returned slice changed the store")
	}
}

func TestFromSnapshotRejectsDuplicates(t *testing.T) {
	snap := seedSnapshot()
	snap.Tasks = append(snap.Tasks, snap.Tasks[0])
	if _, err := FromSnapshot(snap); err == nil {
		t.Fatal("expected duplicate task id error")
	}
	snap = seedSnapshot()
	snap.Events = append(snap.Events, snap.Events[0])
	if _, err := FromSnapshot(snap); err == nil {
		t.Fatal("expected duplicate event id error")
	}
}

var _ Source = (*storage.SQLiteCatalog)(nil)

type failingSource struct{ err error }

func (f failingSource) ListTasks(context.Context) ([]model.Task, error) {
	return nil, f.err
}

func (f failingSource) ListEvents(context.Context) ([]model.Event, error) { return nil, f.err }

func (f failingSource) ListUsers(context.Context) ([]model.User, error) {
	return nil, f.err
}

func TestNewFromCatalog(t *testing.T) {
	catalog, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer catalog.Close()

	s, err := New(t.Context(), catalog, WithTheme(model.ThemeDark))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if len(s.Tasks()) != 3 || len(s.Events()) != 2 || len(s.Users()) != 3 {
		t.Fatalf("unexpected seed sizes: %d tasks, %d events, %d users", len(s.Tasks()), len(s.Events()), len(s.Users()))
	}
	if s.Theme() != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", s.Theme())
	}

	boom := errors.New("boom")
	if _, err := New(t.Context(), failingSource{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
