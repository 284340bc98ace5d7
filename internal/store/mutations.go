package store

import "github.com/sandeepkv93/dashd/internal/model"

func (s *Store) ToggleTheme() model.Theme {
	s.theme = s.theme.Toggled()
	s.logger.Debug("theme toggled", "theme", s.theme)
	return s.theme
}

// SetTheme reports false and changes nothing for an unknown theme.
func (s *Store) SetTheme(t model.Theme) bool {
	if !t.IsValid() {
		return false
	}
	s.theme = t
	s.logger.Debug("theme set", "theme", t)
	return true
}

// Select makes tab the active view. Unknown tabs are ignored.
func (s *Store) Select(tab model.Tab) bool {
	if !tab.IsValid() {
		return false
	}
	s.active = tab
	s.logger.Debug("tab selected", "tab", tab)
	return true
}

// MoveTask shifts a task one column in dir. It returns false without
// changing anything when the task is unknown or already at that edge.
func (s *Store) MoveTask(id int, dir model.Direction) (model.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		next, ok := s.tasks[i].Next(dir)
		if !ok {
			return s.tasks[i], false
		}
		from := s.tasks[i].Status
		s.tasks[i].Status = next
		s.logger.Debug("task moved", "id", id, "from", from, "to", next)
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// AddEvent appends an event built from the trimmed draft. A draft with an
// empty title, date or time is dropped silently.
func (s *Store) AddEvent(draft model.EventDraft) (model.Event, bool) {
	if err := draft.Validate(); err != nil {
		s.logger.Debug("event draft rejected", "err", err)
		return model.Event{}, false
	}
	d := draft.Trimmed()
	ev := model.Event{
		ID:    s.nextEventID(),
		Title: d.Title,
		Date:  d.Date,
		Time:  d.Time,
	}
	s.events = append(s.events, ev)
	s.logger.Debug("event added", "id", ev.ID, "title", ev.Title, "date", ev.Date, "time", ev.Time)
	return ev, true
}

// nextEventID derives the id from the clock in milliseconds and bumps it
// past every existing id, so ids stay unique even within one millisecond.
func (s *Store) nextEventID() int64 {
	id := s.now().UnixMilli()
	for _, e := range s.events {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}
