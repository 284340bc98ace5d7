package views

import (
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dashd/internal/chart"
	"github.com/sandeepkv93/dashd/internal/model"
)

func TestTokensFollowTheme(t *testing.T) {
	if TokensFor(model.ThemeDark).Background != lipgloss.Color("#1a1a1a") {
		t.Fatalf("unexpected dark background: %v", TokensFor(model.ThemeDark).Background)
	}
	if TokensFor(model.ThemeLight).Background != lipgloss.Color("#f5f5f5") {
		t.Fatalf("unexpected light background: %v", TokensFor(model.ThemeLight).Background)
	}
	theme := model.ThemeLight
	if TokensFor(theme.Toggled().Toggled()) != TokensFor(theme) {
		t.Fatal("expected double toggle to restore tokens")
	}
}

func TestThemeButtonLabel(t *testing.T) {
	if got := ThemeButtonLabel(model.ThemeLight); got != "🌙 Dark" {
		t.Fatalf("unexpected light label %q", got)
	}
	if got := ThemeButtonLabel(model.ThemeDark); got != "☀️ Light" {
		t.Fatalf("unexpected dark label %q", got)
	}
}

func TestFormatStat(t *testing.T) {
	cases := []struct {
		card model.StatCard
		want string
	}{
		{model.StatCard{Value: 1234, Kind: model.StatCount}, "1,234"},
		{model.StatCard{Value: 45678, Kind: model.StatCurrency}, "$45,678"},
		{model.StatCard{Value: 12.5, Kind: model.StatPercent}, "12.5%"},
		{model.StatCard{Value: 89, Kind: model.StatCount}, "89"},
	}
	for _, tc := range cases {
		if got := FormatStat(tc.card); got != tc.want {
			t.Fatalf("FormatStat(%v) = %q, want %q", tc.card.Value, got, tc.want)
		}
	}
}

func TestTitleAndFormatStatConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Title("kanban board"); got != "Kanban Board" {
				errs <- got
			}
			if got := FormatStat(model.StatCard{Value: 1234, Kind: model.StatCount}); got != "1,234" {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("unexpected concurrent result %q", got)
	}
}

func TestRasterGridPlacesBarsAndLabels(t *testing.T) {
	cmds := chart.Render(model.Series{
		Labels: []string{"Mon", "Tue"},
		Values: []float64{90, 45},
	}, "#333333")
	grid := rasterGrid(cmds, 60, 20)
	if len(grid) != 20 || len(grid[0]) != 60 {
		t.Fatalf("unexpected grid size %dx%d", len(grid), len(grid[0]))
	}

	// Canvas x=20..50 maps to columns 4..9 at 5px per column.
	filled := func(col int) int {
		n := 0
		for r := range grid {
			if grid[r][col].r == '█' || grid[r][col].r == '▄' {
				n++
			}
		}
		return n
	}
	if filled(5) == 0 {
		t.Fatal("expected first bar to fill column 5")
	}
	if filled(13) == 0 || filled(13) >= filled(5) {
		t.Fatalf("expected shorter second bar, got %d vs %d", filled(13), filled(5))
	}
	if filled(0) != 0 {
		t.Fatal("expected left margin to stay empty")
	}

	labelRow := string(runesOf(grid[19]))
	if !strings.Contains(labelRow, "Mon") || !strings.Contains(labelRow, "Tue") {
		t.Fatalf("expected labels on bottom row, got %q", labelRow)
	}
}

func TestRasterGridClearResets(t *testing.T) {
	cmds := []chart.Command{
		{Op: chart.OpFillRect, X: 0, Y: 0, Width: 300, Height: 200, Color: "#000000"},
		{Op: chart.OpClear, Width: 300, Height: 200},
	}
	grid := rasterGrid(cmds, 10, 5)
	for _, row := range grid {
		for _, c := range row {
			if c.r != ' ' {
				t.Fatalf("expected cleared grid, got %q", c.r)
			}
		}
	}
	if rasterGrid(cmds, 0, 5) != nil {
		t.Fatal("expected nil grid for zero width")
	}
}

func TestChartSize(t *testing.T) {
	for density := 1; density <= 3; density++ {
		cols, rows := ChartSize(density)
		if cols > contentWidth-4 || rows <= 0 {
			t.Fatalf("density %d: chart %dx%d does not fit", density, cols, rows)
		}
	}
}

func TestRenderUsersPanel(t *testing.T) {
	out := RenderUsersPanel(UsersPanelData{
		Users: []model.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin, Status: model.UserActive},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser, Status: model.UserInactive},
		},
		SearchView: "Search users...",
	}, TokensFor(model.ThemeLight))
	for _, want := range []string{"Users Management", "Add User", "Name", "Email", "John Doe", "jane@example.com", "Admin", "Inactive", "[Edit] [Delete]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in users panel:\n%s", want, out)
		}
	}
}

func TestRenderCalendarPanelModal(t *testing.T) {
	tk := TokensFor(model.ThemeDark)
	closed := RenderCalendarPanel(CalendarPanelData{
		Events: []model.Event{{ID: 1, Title: "Team Meeting", Date: "2024-01-15", Time: "10:00"}},
	}, tk)
	if !strings.Contains(closed, "Team Meeting") || !strings.Contains(closed, "2024-01-15") {
		t.Fatalf("expected event card:\n%s", closed)
	}
	if strings.Contains(closed, "Add New Event") {
		t.Fatal("expected modal hidden")
	}

	open := RenderCalendarPanel(CalendarPanelData{Modal: &EventModalData{Focus: 4}}, tk)
	for _, want := range []string{"Add New Event", "Cancel", "▸ Add Event", "(no events)"} {
		if !strings.Contains(open, want) {
			t.Fatalf("expected %q in modal:\n%s", want, open)
		}
	}
}

func TestRenderKanbanArrows(t *testing.T) {
	out := RenderKanbanPanel(KanbanPanelData{Columns: []KanbanColumnData{
		{Title: "To Do", Cards: []KanbanCardData{{ID: 1, Title: "Design new homepage", Priority: "high", CanRight: true}}},
		{Title: "In Progress"},
		{Title: "Done", Cards: []KanbanCardData{{ID: 4, Title: "Update documentation", Priority: "low", CanLeft: true}}},
	}}, TokensFor(model.ThemeLight))
	if !strings.Contains(out, "Project Board") || !strings.Contains(out, "(empty)") {
		t.Fatalf("unexpected board:\n%s", out)
	}
	if strings.Count(out, "→") != 1 || strings.Count(out, "←") != 1 {
		t.Fatalf("expected one arrow each way:\n%s", out)
	}
}

func TestRenderDashboardPanel(t *testing.T) {
	out := RenderDashboardPanel(DashboardData{
		Cards:    []model.StatCard{{Title: "Total Users", Value: 1234, Kind: model.StatCount, Color: "blue", Icon: "👥"}},
		Chart:    "chart-here",
		Activity: []model.Activity{{Text: "New user registered", Ago: "2 minutes ago", Color: "green"}},
	}, TokensFor(model.ThemeLight))
	for _, want := range []string{"Dashboard Overview", "1,234", "Total Users", "Weekly Analytics", "chart-here", "New user registered - 2 minutes ago"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dashboard:\n%s", want, out)
		}
	}
}

func TestRenderAppSidebar(t *testing.T) {
	out := RenderApp(AppData{
		Header:      "dashd | view: Tables | theme: light",
		ThemeButton: ThemeButtonLabel(model.ThemeLight),
		Sidebar: []SidebarItem{
			{Label: model.TabDashboard.Label()},
			{Label: model.TabTables.Label(), Active: true, Focused: true},
		},
		Content:    "body",
		StatusLine: "ok",
	}, TokensFor(model.ThemeLight))
	for _, want := range []string{"Admin Dashboard", "🌙 Dark", "view: Tables", "› " + model.TabTables.Label(), "body", "ok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in app:\n%s", want, out)
		}
	}
}

func runesOf(row []cell) []rune {
	out := make([]rune, len(row))
	for i, c := range row {
		out[i] = c.r
	}
	return out
}
