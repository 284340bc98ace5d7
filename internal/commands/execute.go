package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Goto  func(GotoArgs) (Result, error)
	Theme func(ThemeArgs) (Result, error)
	Move  func(MoveArgs) (Result, error)
	Event func(EventArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	case TypeMove:
		if handlers.Move == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "move handler not configured"}
		}
		return handlers.Move(*cmd.Move)
	case TypeEvent:
		if handlers.Event == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "event handler not configured"}
		}
		return handlers.Event(*cmd.Event)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
