package commands

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd scene -n", []string{"scene", "-n"}, true},
		{"cmd ", nil, true},
		{"cmd", nil, false},
		{"hello", nil, false},
		{"Cmd scene", nil, false},
	}
	for _, c := range cases {
		args, ok := Parse(c.line)
		if ok != c.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", c.line, ok, c.ok)
			continue
		}
		if len(args) != len(c.args) {
			t.Errorf("Parse(%q) = %v, want %v", c.line, args, c.args)
			continue
		}
		for i := range args {
			if args[i] != c.args[i] {
				t.Errorf("Parse(%q)[%d] = %q, want %q", c.line, i, args[i], c.args[i])
			}
		}
	}
}

func TestExecuteRunsWithFlags(t *testing.T) {
	reg := NewRegistry()
	fs := newFlagSet("scene")
	next := fs.Bool("n", false, "")
	var ran bool
	reg.Register("scene", fs, func() error {
		ran = *next
		return nil
	})
	if err := reg.Execute([]string{"scene", "-n"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Error("flag value not visible to Run")
	}
}

func TestExecuteErrors(t *testing.T) {
	reg := NewRegistry()
	reg.Register("place", newFlagSet("place"), func() error { return nil })

	if err := reg.Execute(nil); err == nil {
		t.Error("missing subcommand should error")
	}
	if err := reg.Execute([]string{"nosuch"}); err == nil {
		t.Error("unknown command should error")
	}
	if err := reg.Execute([]string{"place", "-bogus"}); err == nil {
		t.Error("bad flag should error")
	}
}

func TestHelpListsCommands(t *testing.T) {
	reg := NewRegistry()
	reg.Register("scene", newFlagSet("scene"), func() error { return nil })
	reg.Register("place", newFlagSet("place"), func() error { return nil })
	err := reg.Execute([]string{"help"})
	if err == nil {
		t.Fatal("help should surface its listing through the error text")
	}
	msg := err.Error()
	if !strings.Contains(msg, "place, scene") {
		t.Errorf("help = %q, want sorted listing", msg)
	}
}
