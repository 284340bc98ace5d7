package model

import (
	"errors"
	"testing"
)

func TestEventDraftPresenceCheck(t *testing.T) {
	cases := []struct {
		name  string
		draft EventDraft
		ok    bool
	}{
		{"complete", EventDraft{Title: "Standup", Date: "2025-06-15", Time: "09:00"}, true},
		{"missing title", EventDraft{Date: "2025-06-15", Time: "09:00"}, false},
		{"blank title", EventDraft{Title: "   ", Date: "2025-06-15", Time: "09:00"}, false},
		{"missing date", EventDraft{Title: "Standup", Time: "09:00"}, false},
		{"missing time", EventDraft{Title: "Standup", Date: "2025-06-15"}, false},
		{"free text accepted", EventDraft{Title: "Lunch", Date: "someday", Time: "noon"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid draft, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrIncompleteDraft) {
				t.Fatalf("expected ErrIncompleteDraft, got %v", err)
			}
		})
	}
}

func TestEventValidateRequiresID(t *testing.T) {
	ev := Event{Title: "Meeting", Date: "2025-06-10", Time: "10:00"}
	if err := ev.Validate(); err == nil {
		t.Fatal("expected error for zero id")
	}
	ev.ID = 1
	if err := ev.Validate(); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}
}

func TestUserBadges(t *testing.T) {
	u := User{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: RoleManager, Status: UserInactive}
	if err := u.Validate(); err != nil {
		t.Fatalf("expected valid user, got %v", err)
	}
	if u.Role.Badge() != "manager" || u.Status.Badge() != "inactive" {
		t.Fatalf("unexpected badges: %q %q", u.Role.Badge(), u.Status.Badge())
	}
	u.Role = Role("Root")
	if err := u.Validate(); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestThemeToggledTwiceIsIdentity(t *testing.T) {
	for _, th := range []Theme{ThemeLight, ThemeDark} {
		if got := th.Toggled().Toggled(); got != th {
			t.Fatalf("double toggle of %s gave %s", th, got)
		}
	}
}

func TestParseTab(t *testing.T) {
	if tab, ok := ParseTab("Kanban"); !ok || tab != TabKanban {
		t.Fatalf("expected kanban, got %q %v", tab, ok)
	}
	if _, ok := ParseTab("settings"); ok {
		t.Fatal("expected unknown tab to be rejected")
	}
}

func TestSeriesMax(t *testing.T) {
	s := Series{Labels: []string{"a", "b", "c"}, Values: []float64{65, 90, 35}}
	if s.Max() != 90 {
		t.Fatalf("expected max 90, got %v", s.Max())
	}
	if (Series{}).Max() != 0 {
		t.Fatal("expected zero max for empty series")
	}
	if err := (Series{Labels: []string{"a"}}).Validate(); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
