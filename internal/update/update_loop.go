package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SelectTabMsg:
		m.selectTab(typed.Tab)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	}
	return m.updateInputs(msg)
}

// updateInputs forwards everything else, such as cursor blinks, to the text
// inputs. Unfocused inputs ignore it.
func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 4)
	m.commandInput, cmds[0] = m.commandInput.Update(msg)
	m.titleInput, cmds[1] = m.titleInput.Update(msg)
	m.dateInput, cmds[2] = m.dateInput.Update(msg)
	m.timeInput, cmds[3] = m.timeInput.Update(msg)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// Help only toggles from an empty palette; otherwise ? is command text.
	if m.Palette.Active {
		if keyStr == m.Keys.Help && m.commandInput.Value() == "" {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg)
	}

	// The open modal captures every key so digits and letters reach its fields.
	if m.Store.ActiveTab() == model.TabCalendar && m.Calendar.ModalOpen {
		return m.handleModalKey(msg)
	}

	if next, handled := m.handleSidebarKey(msg); handled {
		return next, nil
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		cmd := m.commandInput.Focus()
		return m, cmd
	case m.Keys.Dashboard:
		m.selectTab(model.TabDashboard)
		return m, nil
	case m.Keys.Tables:
		m.selectTab(model.TabTables)
		return m, nil
	case m.Keys.Calendar:
		m.selectTab(model.TabCalendar)
		return m, nil
	case m.Keys.Kanban:
		m.selectTab(model.TabKanban)
		return m, nil
	case m.Keys.Theme:
		theme := m.Store.ToggleTheme()
		m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", theme), IsError: false}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.helpViewport.GotoTop()
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
		return m, nil
	case "pgup", "pgdown":
		if m.HelpVisible {
			var cmd tea.Cmd
			m.helpViewport.SetContent(renderCheatSheet(m.Store.ActiveTab(), m.Store.Theme()))
			m.helpViewport, cmd = m.helpViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case "D":
		m.cycleDensity()
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Store.ActiveTab() {
	case model.TabTables:
		return m.handleUsersKey(msg), nil
	case model.TabCalendar:
		return m.handleCalendarKey(msg)
	case model.TabKanban:
		return m.handleKanbanKey(msg), nil
	}
	return m, nil
}

// selectTab activates tab and rebuilds the per-view UI state, so every view
// starts fresh: the modal is closed with an empty draft and cursors reset.
func (m *Model) selectTab(tab model.Tab) bool {
	if !m.Store.Select(tab) {
		return false
	}
	m.Sidebar.Cursor = tabIndex(tab)
	m.Users = UsersState{}
	m.Kanban = KanbanState{}
	m.resetCalendar()
	m.helpViewport.GotoTop()
	m.Status = StatusBar{Text: fmt.Sprintf("view: %s", views.Title(string(tab))), IsError: false}
	return true
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > 3 {
		m.uiDensity = 1
	}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("density level: %d", m.uiDensity),
		IsError: false,
	}
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	tab := m.Store.ActiveTab()
	theme := m.Store.Theme()
	tk := views.TokensFor(theme)

	content := ""
	switch tab {
	case model.TabDashboard:
		content = m.renderDashboardView(tk)
	case model.TabTables:
		content = m.renderUsersView(tk)
	case model.TabCalendar:
		content = m.renderCalendarView(tk)
	case model.TabKanban:
		content = m.renderKanbanView(tk)
	}

	return views.RenderApp(views.AppData{
		Header:      fmt.Sprintf("dashd | view: %s | theme: %s", views.Title(string(tab)), theme),
		ThemeButton: views.ThemeButtonLabel(theme),
		Sidebar:     m.sidebarItems(),
		Content:     content,
		SidePane:    joinNonEmpty(m.renderCommandPalette(), m.renderHelpIfVisible()),
		StatusLine:  status,
		StatusError: m.Status.IsError,
		Footer: fmt.Sprintf("keys: %s dashboard | %s tables | %s calendar | %s kanban | %s theme | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Tables, m.Keys.Calendar, m.Keys.Kanban, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	}, tk)
}
