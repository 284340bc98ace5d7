package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/views"
)

var readOnlyActions = map[string]string{
	"s": "search",
	"a": "add user",
	"e": "edit user",
	"d": "delete user",
}

func (m Model) handleUsersKey(msg tea.KeyMsg) Model {
	users := m.Store.Users()
	switch key := msg.String(); key {
	case "up", "k":
		if m.Users.Cursor > 0 {
			m.Users.Cursor--
		}
	case "down", "j":
		if m.Users.Cursor < len(users)-1 {
			m.Users.Cursor++
		}
	default:
		if action, ok := readOnlyActions[key]; ok {
			m.Status = StatusBar{Text: fmt.Sprintf("read-only: %s is not available", action), IsError: false}
		}
	}
	return m
}

func (m Model) renderUsersView(tk views.Tokens) string {
	return views.RenderUsersPanel(views.UsersPanelData{
		Users:      m.Store.Users(),
		Cursor:     m.Users.Cursor,
		SearchView: m.searchInput.View(),
	}, tk)
}
