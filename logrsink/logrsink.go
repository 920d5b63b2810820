// Package logrsink adapts a logr.Logger to the tinylog.Sink interface.
//
// logr has only info and error output with numeric verbosity, so channels are
// mapped as follows: Debug is V(1).Info, Info and Log are Info, Warn is Info
// with a "severity"="warn" pair, and Error is Error with a nil error. The
// first argument becomes the message and any remaining arguments are attached
// under the "args" key. Groups nest with WithName.
package logrsink

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

const (
	// DebugVerbosity is the V level used for the Debug channel.
	DebugVerbosity = 1

	argsKey     = "args"
	severityKey = "severity"
)

// Sink writes to a logr.Logger.
type Sink struct {
	mu    sync.Mutex
	stack []logr.Logger
}

// New returns a Sink over l.
func New(l logr.Logger) *Sink {
	return &Sink{stack: []logr.Logger{l}}
}

// Debug logs at verbosity DebugVerbosity.
func (s *Sink) Debug(args ...any) {
	msg, kv := split(args)
	s.current().V(DebugVerbosity).Info(msg, kv...)
}

// Info logs at verbosity 0.
func (s *Sink) Info(args ...any) {
	msg, kv := split(args)
	s.current().Info(msg, kv...)
}

// Log is the same as Info.
func (s *Sink) Log(args ...any) { s.Info(args...) }

// Warn logs at verbosity 0 with a "severity"="warn" pair.
func (s *Sink) Warn(args ...any) {
	msg, kv := split(args)
	s.current().Info(msg, append([]any{severityKey, "warn"}, kv...)...)
}

// Error logs through logr's Error with a nil error.
func (s *Sink) Error(args ...any) {
	msg, kv := split(args)
	s.current().Error(nil, msg, kv...)
}

// Group names subsequent output after label.
func (s *Sink) Group(label ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.stack[len(s.stack)-1]
	if len(label) > 0 {
		cur = cur.WithName(fmt.Sprint(label...))
	}
	s.stack = append(s.stack, cur)
}

// GroupEnd drops the innermost name. The base logger is never popped.
func (s *Sink) GroupEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *Sink) current() logr.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack[len(s.stack)-1]
}

func split(args []any) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}
	msg := fmt.Sprint(args[0])
	if len(args) == 1 {
		return msg, nil
	}
	return msg, []any{argsKey, args[1:]}
}
