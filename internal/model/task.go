package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

// Status is a kanban column and the value stored on a task.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// Columns lists the board columns in display order.
var Columns = []Status{StatusTodo, StatusProgress, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	default:
		return false
	}
}

func (s Status) index() int {
	for i, c := range Columns {
		if c == s {
			return i
		}
	}
	return -1
}

// Left returns the column before s. ok is false for todo and unknown values.
func (s Status) Left() (Status, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return Columns[i-1], true
}

// Right returns the column after s. ok is false for done and unknown values.
func (s Status) Right() (Status, bool) {
	i := s.index()
	if i < 0 || i >= len(Columns)-1 {
		return s, false
	}
	return Columns[i+1], true
}

func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Direction is a one-column move on the board.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func ParseDirection(raw string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionLeft, "l", "<", "back":
		return DirectionLeft, true
	case DirectionRight, "r", ">", "forward":
		return DirectionRight, true
	default:
		return "", false
	}
}

type Task struct {
	ID       int
	Title    string
	Status   Status
	Priority Priority
}

// Next returns the status a move in dir would produce.
func (t Task) Next(dir Direction) (Status, bool) {
	switch dir {
	case DirectionLeft:
		return t.Status.Left()
	case DirectionRight:
		return t.Status.Right()
	default:
		return t.Status, false
	}
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id must be positive")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}
