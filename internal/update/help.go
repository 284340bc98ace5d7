package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.Store.ActiveTab()),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		Markdown: m.helpViewport.View(),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Tables, Action: "switch to Tables"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Kanban, Action: "switch to Kanban"},
		{Key: "tab", Action: "focus sidebar"},
		{Key: m.Keys.Theme, Action: "toggle theme"},
		{Key: "/", Action: "open command palette"},
		{Key: "D", Action: "cycle density"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	return tabBindings(m.Store.ActiveTab())
}

func tabBindings(tab model.Tab) []KeyBinding {
	switch tab {
	case model.TabTables:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "s/a/e/d", Action: "search, add, edit, delete (read-only)"},
		}
	case model.TabCalendar:
		return []KeyBinding{
			{Key: "a", Action: "open add event"},
			{Key: "tab", Action: "next modal field"},
			{Key: "enter", Action: "submit or cancel"},
			{Key: "esc", Action: "close modal"},
		}
	case model.TabKanban:
		return []KeyBinding{
			{Key: "h/l", Action: "focus column"},
			{Key: "j/k", Action: "focus card"},
			{Key: "</>", Action: "move card left/right"},
		}
	default:
		return []KeyBinding{{Key: "pgup/pgdown", Action: "scroll help"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func cheatSheet(tab model.Tab) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", views.Title(string(tab)))
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, kb := range tabBindings(tab) {
		fmt.Fprintf(&b, "| `%s` | %s |\n", kb.Key, kb.Action)
	}
	b.WriteString("\nPalette: `goto <tab>`, `theme [light|dark]`, `move <id> <left|right>`, `event <title> <date> <time>`.\n")
	return b.String()
}

func renderCheatSheet(tab model.Tab, theme model.Theme) string {
	return views.RenderMarkdown(cheatSheet(tab), theme)
}
