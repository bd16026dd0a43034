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
		{"/new weekend errands", TypeNew},
		{"/new", TypeNew},
		{"rename Sprint planning", TypeRename},
		{"/delete", TypeDelete},
		{"/conversations", TypeConversations},
		{"/help", TypeHelp},
		{"/quit", TypeQuit},
		{"/q", TypeQuit},
		{"exit", TypeQuit},
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

func TestParseNewTitle(t *testing.T) {
	cmd, err := Parse("/new weekend errands")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.New == nil || cmd.New.Title != "weekend errands" {
		t.Fatalf("unexpected new args: %+v", cmd.New)
	}

	cmd, err = Parse("/new")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.New == nil || cmd.New.Title != "" {
		t.Fatalf("untitled new should have empty title: %+v", cmd.New)
	}
}

func TestParseRenameRequiresTitle(t *testing.T) {
	_, err := Parse("/rename")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
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

func TestIsCommand(t *testing.T) {
	if !IsCommand("  /new chat") {
		t.Fatal("slash input should be a command")
	}
	if IsCommand("create a shopping list") {
		t.Fatal("plain chat input should not be a command")
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/rename Deep work notes")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Rename: func(a RenameArgs) (Result, error) {
			called = true
			if a.Title != "Deep work notes" {
				t.Fatalf("unexpected title: %q", a.Title)
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

func TestExecuteQuit(t *testing.T) {
	cmd, err := Parse("/quit")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	res, err := Execute(cmd, Handlers{})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !res.Quit {
		t.Fatal("quit command should set Quit")
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("/conversations")
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
