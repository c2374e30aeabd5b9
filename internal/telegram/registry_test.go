package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegisterCommandValidation(t *testing.T) {
	r := NewRegistry()

	r.RegisterCommand("/ok", Command{Handler: noop, Description: "ok"})
	r.RegisterCommand("no-slash", Command{Handler: noop, Description: "bad"})
	r.RegisterCommand("/nodesc", Command{Handler: noop})
	r.RegisterCommand("/nohandler", Command{Description: "bad"})
	r.RegisterCommand("/ok", Command{Handler: noop, Description: "duplicate"})

	list := r.ListCommands(false)
	if len(list) != 1 || list[0].Text != "/ok" {
		t.Fatalf("commands = %v", list)
	}
	if list[0].Description != "ok" {
		t.Fatalf("duplicate overwrote description: %q", list[0].Description)
	}
}

func TestListCommandsHidesHidden(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommand("/visible", Command{Handler: noop, Description: "v"})
	r.RegisterCommand("/hidden", Command{Handler: noop, Description: "h", Hidden: true})

	if got := len(r.ListCommands(true)); got != 1 {
		t.Fatalf("visible = %d", got)
	}
	if got := len(r.ListCommands(false)); got != 2 {
		t.Fatalf("all = %d", got)
	}
}

func TestLookupCommandAliases(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommand("/task", Command{
		Handler:     noop,
		Description: "create",
		Aliases:     []string{"New Shift", "Load"},
	})

	for _, input := range []string{"/task", "New Shift", "Load", "/Load"} {
		key, cmd, ok := r.LookupCommand(input)
		if !ok || key != "/task" || cmd.Handler == nil {
			t.Fatalf("lookup %q = %q, %v", input, key, ok)
		}
	}
	if _, _, ok := r.LookupCommand("Unload"); ok {
		t.Fatal("unknown alias resolved")
	}
}

func TestCallbackRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.RegisterCallback("take_task", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.RegisterCallback("take_task", noop); err == nil {
		t.Fatal("duplicate callback accepted")
	}
	if err := r.RegisterCallback("", noop); err == nil {
		t.Fatal("empty key accepted")
	}
	if err := r.RegisterCallback("nil_handler", nil); err == nil {
		t.Fatal("nil handler accepted")
	}

	if _, ok := r.GetCallback("take_task"); !ok {
		t.Fatal("registered callback missing")
	}
	if _, ok := r.GetCallback("other"); ok {
		t.Fatal("phantom callback found")
	}
	if keys := r.ListCallbacks(); len(keys) != 1 || keys[0] != "take_task" {
		t.Fatalf("keys = %v", keys)
	}
}

func TestCallbackNotFoundDefault(t *testing.T) {
	r := NewRegistry()
	if r.CallbackNotFound() == nil {
		t.Fatal("no default not-found handler")
	}
	r.SetCallbackNotFound(nil) // ignored
	if r.CallbackNotFound() == nil {
		t.Fatal("nil replaced default handler")
	}
}
