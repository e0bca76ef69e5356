package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeTab    Type = "tab"
	TypeToggle Type = "toggle"
	TypeCopy   Type = "copy"
	TypeLog    Type = "log"
	TypeSWOT   Type = "swot"
	TypeReload Type = "reload"
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

type TabArgs struct {
	Panel string
}

type ToggleArgs struct {
	TaskID string
}

// CategoryArgs names a prompt category. An empty Category means the active
// panel's category.
type CategoryArgs struct {
	Category string
}

type Command struct {
	Type   Type
	Raw    string
	Tab    *TabArgs
	Toggle *ToggleArgs
	Copy   *CategoryArgs
	Log    *CategoryArgs
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
	case TypeTab:
		return parseTab(input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypeCopy:
		return parseCategory(input, TypeCopy, args)
	case TypeLog:
		return parseCategory(input, TypeLog, args)
	case TypeSWOT, TypeReload:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTab(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tab requires exactly one panel"}
	}
	return Command{Type: TypeTab, Raw: raw, Tab: &TabArgs{Panel: strings.ToLower(args[0])}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task id"}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{TaskID: args[0]}}, nil
}

func parseCategory(raw string, t Type, args []string) (Command, error) {
	if len(args) > 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes at most one category", t)}
	}
	ca := &CategoryArgs{}
	if len(args) == 1 {
		ca.Category = strings.ToLower(args[0])
	}
	cmd := Command{Type: t, Raw: raw}
	if t == TypeCopy {
		cmd.Copy = ca
	} else {
		cmd.Log = ca
	}
	return cmd, nil
}
