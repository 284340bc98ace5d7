package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/dashd/internal/model"
)

func setupCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	catalog, err := OpenMemory()
	if err != nil {
		t.Fatalf("open memory catalog: %v", err)
	}
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func TestSeedTasks(t *testing.T) {
	catalog := setupCatalog(t)
	ctx := context.Background()

	tasks, err := catalog.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	want := []model.Status{model.StatusTodo, model.StatusProgress, model.StatusDone}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, task := range tasks {
		if task.ID != i+1 || task.Status != want[i] {
			t.Fatalf("unexpected task %d: %#v", i, task)
		}
	}
	if tasks[2].Priority != model.PriorityLow {
		t.Fatalf("unexpected done task: %#v", tasks[2])
	}
}

func TestSeedEventsAndUsers(t *testing.T) {
	catalog := setupCatalog(t)
	ctx := context.Background()

	events, err := catalog.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 || events[0].Title != "Meeting" || events[1].Time != "14:00" {
		t.Fatalf("unexpected events: %#v", events)
	}

	users, err := catalog.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[2].Name != "Bob Johnson" || users[2].Status != model.UserInactive || users[2].Role != model.RoleManager {
		t.Fatalf("unexpected third user: %#v", users[2])
	}
}

func TestSeedDashboardData(t *testing.T) {
	catalog := setupCatalog(t)
	ctx := context.Background()

	cards, err := catalog.ListStatCards(ctx)
	if err != nil {
		t.Fatalf("list stat cards: %v", err)
	}
	if len(cards) != 4 || cards[1].Kind != model.StatCurrency || cards[3].Value != 12.5 {
		t.Fatalf("unexpected cards: %#v", cards)
	}

	activity, err := catalog.ListActivity(ctx)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(activity) != 3 || activity[2].Color != "orange" {
		t.Fatalf("unexpected activity: %#v", activity)
	}

	series, err := catalog.Series(ctx, WeeklySeries)
	if err != nil {
		t.Fatalf("weekly series: %v", err)
	}
	wantValues := []float64{65, 45, 80, 35, 90, 60, 75}
	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i := range wantValues {
		if series.Values[i] != wantValues[i] || series.Labels[i] != wantLabels[i] {
			t.Fatalf("unexpected point %d: %s=%v", i, series.Labels[i], series.Values[i])
		}
	}

	if _, err := catalog.Series(ctx, "monthly"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown series, got %v", err)
	}
}

func TestInvalidRowIsRejected(t *testing.T) {
	catalog := setupCatalog(t)
	ctx := context.Background()
	if _, err := catalog.db.ExecContext(ctx, `INSERT INTO users (id, name, email, role, status) VALUES (4, 'Eve', 'not-an-email', 'User', 'Active')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := catalog.ListUsers(ctx); !errors.Is(err, ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow, got %v", err)
	}
}
