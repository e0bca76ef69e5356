package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Tab    func(TabArgs) (Result, error)
	Toggle func(ToggleArgs) (Result, error)
	Copy   func(CategoryArgs) (Result, error)
	Log    func(CategoryArgs) (Result, error)
	SWOT   func() (Result, error)
	Reload func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTab:
		if handlers.Tab == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Tab(*cmd.Tab)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeCopy:
		if handlers.Copy == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Copy(*cmd.Copy)
	case TypeLog:
		if handlers.Log == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Log(*cmd.Log)
	case TypeSWOT:
		if handlers.SWOT == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.SWOT()
	case TypeReload:
		if handlers.Reload == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Reload()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
