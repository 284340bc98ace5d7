package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/views"
)

// handleSidebarKey moves the sidebar cursor. The first tab press only
// focuses the sidebar; enter then selects the highlighted entry.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (Model, bool) {
	n := len(model.Tabs)
	switch msg.String() {
	case "tab":
		if m.Sidebar.Focused {
			m.Sidebar.Cursor = (m.Sidebar.Cursor + 1) % n
		}
		m.Sidebar.Focused = true
		return m, true
	case "shift+tab":
		if m.Sidebar.Focused {
			m.Sidebar.Cursor = (m.Sidebar.Cursor - 1 + n) % n
		}
		m.Sidebar.Focused = true
		return m, true
	}
	if !m.Sidebar.Focused {
		return m, false
	}
	switch msg.String() {
	case "up":
		m.Sidebar.Cursor = (m.Sidebar.Cursor - 1 + n) % n
		return m, true
	case "down":
		m.Sidebar.Cursor = (m.Sidebar.Cursor + 1) % n
		return m, true
	case "enter":
		m.Sidebar.Focused = false
		m.selectTab(model.Tabs[m.Sidebar.Cursor])
		return m, true
	case "esc":
		m.Sidebar.Focused = false
		m.Sidebar.Cursor = tabIndex(m.Store.ActiveTab())
		return m, true
	}
	return m, false
}

func (m Model) sidebarItems() []views.SidebarItem {
	active := m.Store.ActiveTab()
	items := make([]views.SidebarItem, 0, len(model.Tabs))
	for i, tab := range model.Tabs {
		items = append(items, views.SidebarItem{
			Label:   tab.Label(),
			Active:  tab == active,
			Focused: m.Sidebar.Focused && i == m.Sidebar.Cursor,
		})
	}
	return items
}
