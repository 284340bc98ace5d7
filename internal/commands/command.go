package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/dashd/internal/model"
)

type Type string

const (
	TypeGoto  Type = "goto"
	TypeTheme Type = "theme"
	TypeMove  Type = "move"
	TypeEvent Type = "event"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type GotoArgs struct {
	Tab model.Tab
}

// ThemeArgs.Theme is empty for a toggle.
type ThemeArgs struct {
	Theme model.Theme
}

type MoveArgs struct {
	TaskID    int
	Direction model.Direction
}

type EventArgs struct {
	Draft model.EventDraft
}

type Command struct {
	Type  Type
	Raw   string
	Goto  *GotoArgs
	Theme *ThemeArgs
	Move  *MoveArgs
	Event *EventArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGoto, "go", "tab":
		return parseGoto(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeMove:
		return parseMove(input, args)
	case TypeEvent, "add-event":
		return parseEvent(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires one of dashboard, tables, calendar, kanban"}
	}
	tab, ok := model.ParseTab(args[0])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Tab: tab}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 || strings.EqualFold(args[0], "toggle") {
		return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{}}, nil
	}
	theme, ok := model.ParseTheme(args[0])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: theme}}, nil
}

func parseMove(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "move requires task id and direction"}
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", args[0])}
	}
	dir, ok := model.ParseDirection(args[1])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid direction: %s", args[1])}
	}
	return Command{Type: TypeMove, Raw: raw, Move: &MoveArgs{TaskID: id, Direction: dir}}, nil
}

// parseEvent reads "<title...> <date> <time>": the last two fields are the
// date and time, everything before them is the title.
func parseEvent(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires title, date and time"}
	}
	n := len(args)
	draft := model.EventDraft{
		Title: strings.Join(args[:n-2], " "),
		Date:  args[n-2],
		Time:  args[n-1],
	}
	return Command{Type: TypeEvent, Raw: raw, Event: &EventArgs{Draft: draft}}, nil
}
