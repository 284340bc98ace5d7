package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/views"
)

func (m Model) handleKanbanKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		if m.Kanban.Column > 0 {
			m.Kanban.Column--
			m.Kanban.Card = 0
		}
	case "l", "right":
		if m.Kanban.Column < len(model.Columns)-1 {
			m.Kanban.Column++
			m.Kanban.Card = 0
		}
	case "k", "up":
		if m.Kanban.Card > 0 {
			m.Kanban.Card--
		}
	case "j", "down":
		if m.Kanban.Card < len(m.focusedColumn())-1 {
			m.Kanban.Card++
		}
	case "<", "shift+left", "H":
		m.moveFocusedTask(model.DirectionLeft)
	case ">", "shift+right", "L":
		m.moveFocusedTask(model.DirectionRight)
	}
	return m
}

func (m Model) focusedColumn() []model.Task {
	return m.Store.TasksIn(model.Columns[m.Kanban.Column])
}

// moveFocusedTask moves the focused card and follows it into its new column.
// A move past either edge does nothing.
func (m *Model) moveFocusedTask(dir model.Direction) {
	tasks := m.focusedColumn()
	if m.Kanban.Card < 0 || m.Kanban.Card >= len(tasks) {
		return
	}
	task, ok := m.Store.MoveTask(tasks[m.Kanban.Card].ID, dir)
	if !ok {
		return
	}
	for i, status := range model.Columns {
		if status == task.Status {
			m.Kanban.Column = i
		}
	}
	m.Kanban.Card = 0
	for i, t := range m.Store.TasksIn(task.Status) {
		if t.ID == task.ID {
			m.Kanban.Card = i
		}
	}
	m.Status = StatusBar{Text: fmt.Sprintf("moved #%d to %s", task.ID, task.Status.Title()), IsError: false}
}

func (m Model) renderKanbanView(tk views.Tokens) string {
	columns := make([]views.KanbanColumnData, 0, len(model.Columns))
	for ci, status := range model.Columns {
		tasks := m.Store.TasksIn(status)
		cards := make([]views.KanbanCardData, 0, len(tasks))
		for ti, task := range tasks {
			_, canLeft := task.Status.Left()
			_, canRight := task.Status.Right()
			cards = append(cards, views.KanbanCardData{
				ID:       task.ID,
				Title:    task.Title,
				Priority: string(task.Priority),
				CanLeft:  canLeft,
				CanRight: canRight,
				Focused:  ci == m.Kanban.Column && ti == m.Kanban.Card,
			})
		}
		columns = append(columns, views.KanbanColumnData{
			Title:   status.Title(),
			Focused: ci == m.Kanban.Column,
			Cards:   cards,
		})
	}
	return views.RenderKanbanPanel(views.KanbanPanelData{Columns: columns}, tk)
}
