package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "a", "n":
		m.Calendar.ModalOpen = true
		m.Calendar.Focus = fieldTitle
		m.Status = StatusBar{Text: "add event", IsError: false}
		cmd := m.focusModalField()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "down":
		m.Calendar.Focus = (m.Calendar.Focus + 1) % fieldCount
		cmd := m.focusModalField()
		return m, cmd
	case "shift+tab", "up":
		m.Calendar.Focus = (m.Calendar.Focus - 1 + fieldCount) % fieldCount
		cmd := m.focusModalField()
		return m, cmd
	case "enter":
		if m.Calendar.Focus == fieldCancel {
			m.closeModal()
			return m, nil
		}
		return m.submitEvent(), nil
	}

	var cmd tea.Cmd
	switch m.Calendar.Focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	}
	return m, cmd
}

// submitEvent hands the draft to the store. An incomplete draft leaves the
// modal open with its fields untouched.
func (m Model) submitEvent() Model {
	ev, ok := m.Store.AddEvent(m.draft())
	if !ok {
		return m
	}
	m.resetCalendar()
	m.Status = StatusBar{Text: fmt.Sprintf("event added: %s", ev.Title), IsError: false}
	return m
}

func (m Model) draft() model.EventDraft {
	return model.EventDraft{
		Title: m.titleInput.Value(),
		Date:  m.dateInput.Value(),
		Time:  m.timeInput.Value(),
	}
}

// focusModalField focuses the input under the modal cursor and returns its
// blink command. The buttons have no input, so nothing blinks there.
func (m *Model) focusModalField() tea.Cmd {
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
	switch m.Calendar.Focus {
	case fieldTitle:
		return m.titleInput.Focus()
	case fieldDate:
		return m.dateInput.Focus()
	case fieldTime:
		return m.timeInput.Focus()
	}
	return nil
}

// closeModal hides the modal and keeps the draft for the next open.
func (m *Model) closeModal() {
	m.Calendar.ModalOpen = false
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
	m.Status = StatusBar{Text: "add event cancelled", IsError: false}
}

func (m *Model) resetCalendar() {
	m.Calendar = CalendarState{}
	m.titleInput.Reset()
	m.dateInput.Reset()
	m.timeInput.Reset()
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
}

func (m Model) renderCalendarView(tk views.Tokens) string {
	data := views.CalendarPanelData{Events: m.Store.Events()}
	if m.Calendar.ModalOpen {
		data.Modal = &views.EventModalData{
			TitleView: m.titleInput.View(),
			DateView:  m.dateInput.View(),
			TimeView:  m.timeInput.View(),
			Focus:     m.Calendar.Focus,
		}
	}
	return views.RenderCalendarPanel(data, tk)
}
