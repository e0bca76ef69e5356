package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/tab pm", TypeTab},
		{"toggle 3", TypeToggle},
		{"copy co-ceo", TypeCopy},
		{"/copy", TypeCopy},
		{"log code-reviewer", TypeLog},
		{"swot", TypeSWOT},
		{"/RELOAD", TypeReload},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/tab Code-Reviewer")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Tab.Panel != "code-reviewer" {
		t.Fatalf("unexpected panel: %q", cmd.Tab.Panel)
	}
	cmd, err = Parse("copy")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Copy == nil || cmd.Copy.Category != "" {
		t.Fatalf("expected empty category for bare copy, got %+v", cmd.Copy)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"tab", "tab pm logs", "toggle", "copy pm engineer", "swot now", "log a b"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/toggle 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Toggle: func(a ToggleArgs) (Result, error) {
			called = true
			if a.TaskID != "2" {
				t.Fatalf("unexpected task id: %q", a.TaskID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("swot")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
