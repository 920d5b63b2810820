package mock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRecording(t *testing.T) {
	m := New()

	m.Debug("d")
	m.Info("i", 1)
	m.Log()
	m.Warn("w")
	m.Error("e")
	m.Group("g")
	m.GroupEnd()

	want := []Call{
		{Op: OpDebug, Args: []any{"d"}},
		{Op: OpInfo, Args: []any{"i", 1}},
		{Op: OpLog},
		{Op: OpWarn, Args: []any{"w"}},
		{Op: OpError, Args: []any{"e"}},
		{Op: OpGroup, Args: []any{"g"}},
		{Op: OpGroupEnd},
	}
	if diff := cmp.Diff(want, m.Calls, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	if m.Count(OpInfo) != 1 {
		t.Fatalf("expected one info call, got %d", m.Count(OpInfo))
	}

	m.Reset()
	if len(m.Ops()) != 0 {
		t.Fatalf("expected no calls after Reset, got %v", m.Ops())
	}
}

func TestArgsAreCopied(t *testing.T) {
	m := New()
	args := []any{"a"}
	m.Info(args...)
	args[0] = "b"

	if m.Calls[0].Args[0] != "a" {
		t.Fatalf("expected recorded args to be isolated from the caller, got %v", m.Calls[0].Args)
	}
}

func TestPanic(t *testing.T) {
	m := New().On(OpGroupEnd).Panic("closed")

	defer func() {
		if r := recover(); r != "closed" {
			t.Fatalf("expected panic %q, got %v", "closed", r)
		}
		if m.Count(OpGroupEnd) != 1 {
			t.Fatalf("expected the panicking call to be recorded")
		}
	}()

	m.GroupEnd()
}
