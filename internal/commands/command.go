package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeNew           Type = "new"
	TypeRename        Type = "rename"
	TypeDelete        Type = "delete"
	TypeConversations Type = "conversations"
	TypeHelp          Type = "help"
	TypeQuit          Type = "quit"
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

type NewArgs struct {
	Title string
}

type RenameArgs struct {
	Title string
}

type Command struct {
	Type   Type
	Raw    string
	New    *NewArgs
	Rename *RenameArgs
}

// Parse accepts the slash-command forms typed into the chat input. The
// leading slash is optional so handlers can be driven from tests and
// keybindings with bare words.
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
	case TypeNew:
		return parseNew(input, args)
	case TypeRename:
		return parseRename(input, args)
	case TypeDelete:
		return Command{Type: TypeDelete, Raw: input}, nil
	case TypeConversations:
		return Command{Type: TypeConversations, Raw: input}, nil
	case TypeHelp:
		return Command{Type: TypeHelp, Raw: input}, nil
	case TypeQuit, "exit", "q":
		return Command{Type: TypeQuit, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseNew(raw string, args []string) (Command, error) {
	// Title is optional; an untitled conversation gets a default name.
	title := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeNew, Raw: raw, New: &NewArgs{Title: title}}, nil
}

func parseRename(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a title"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Title: title}}, nil
}

// IsCommand reports whether raw chat input should be routed to the
// command parser instead of the response engine.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}
