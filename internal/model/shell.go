package model

import "strings"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the other theme. Unknown values toggle to dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(raw string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.IsValid()
}

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabTables    Tab = "tables"
	TabCalendar  Tab = "calendar"
	TabKanban    Tab = "kanban"
)

// Tabs lists the sidebar entries in display order.
var Tabs = []Tab{TabDashboard, TabTables, TabCalendar, TabKanban}

func (t Tab) IsValid() bool {
	switch t {
	case TabDashboard, TabTables, TabCalendar, TabKanban:
		return true
	default:
		return false
	}
}

func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "📊 Dashboard"
	case TabTables:
		return "📋 Tables"
	case TabCalendar:
		return "📅 Calendar"
	case TabKanban:
		return "📝 Kanban"
	default:
		return string(t)
	}
}

func ParseTab(raw string) (Tab, bool) {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.IsValid()
}
