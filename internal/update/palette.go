package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/commands"
	"github.com/sandeepkv93/dashd/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			m.selectTab(g.Tab)
			return commands.Result{Message: fmt.Sprintf("view: %s", views.Title(string(g.Tab)))}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			if a.Theme == "" {
				return commands.Result{Message: fmt.Sprintf("theme: %s", m.Store.ToggleTheme())}, nil
			}
			m.Store.SetTheme(a.Theme)
			return commands.Result{Message: fmt.Sprintf("theme: %s", a.Theme)}, nil
		},
		Move: func(a commands.MoveArgs) (commands.Result, error) {
			if _, ok := m.Store.Task(a.TaskID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task #%d", a.TaskID)}
			}
			task, ok := m.Store.MoveTask(a.TaskID, a.Direction)
			if !ok {
				return commands.Result{Message: fmt.Sprintf("#%d stays in %s", task.ID, task.Status.Title())}, nil
			}
			return commands.Result{Message: fmt.Sprintf("moved #%d to %s", task.ID, task.Status.Title())}, nil
		},
		Event: func(a commands.EventArgs) (commands.Result, error) {
			ev, ok := m.Store.AddEvent(a.Draft)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "event requires title, date and time"}
			}
			return commands.Result{Message: fmt.Sprintf("event added: %s", ev.Title)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("command failed", "input", raw, "err", err)
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
