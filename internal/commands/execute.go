package commands

import "fmt"

type Result struct {
	Message string
	Quit    bool
}

type Handlers struct {
	New           func(NewArgs) (Result, error)
	Rename        func(RenameArgs) (Result, error)
	Delete        func() (Result, error)
	Conversations func() (Result, error)
	Help          func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeNew:
		if handlers.New == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "new handler not configured"}
		}
		return handlers.New(*cmd.New)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rename handler not configured"}
		}
		return handlers.Rename(*cmd.Rename)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete()
	case TypeConversations:
		if handlers.Conversations == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "conversations handler not configured"}
		}
		return handlers.Conversations()
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "help handler not configured"}
		}
		return handlers.Help()
	case TypeQuit:
		return Result{Quit: true}, nil
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
