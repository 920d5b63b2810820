package mock

import (
	"sync"

	"github.com/tarmac-project/tinylog"
)

// Operation names recorded in Call.Op.
const (
	OpDebug    = "DEBUG"
	OpInfo     = "INFO"
	OpLog      = "LOG"
	OpWarn     = "WARN"
	OpError    = "ERROR"
	OpGroup    = "GROUP"
	OpGroupEnd = "GROUPEND"
)

// Call records a channel invocation.
type Call struct {
	Op   string
	Args []any
}

// Behavior configures a single operation.
type Behavior struct {
	m  *Sink
	op string
}

// Panic makes the operation panic with v after the call is recorded.
func (b *Behavior) Panic(v any) *Sink {
	b.m.mu.Lock()
	defer b.m.mu.Unlock()
	b.m.panics[b.op] = v
	return b.m
}

// Sink implements tinylog.Sink for tests.
type Sink struct {
	mu     sync.Mutex
	panics map[string]any

	// Calls stores a history of operations for assertions.
	Calls []Call
}

var _ tinylog.Sink = (*Sink)(nil)

// New creates an empty recording Sink.
func New() *Sink {
	return &Sink{
		panics: make(map[string]any),
		Calls:  []Call{},
	}
}

// On configures behavior for op.
func (m *Sink) On(op string) *Behavior { return &Behavior{m: m, op: op} }

// Ops returns the recorded operation names in order.
func (m *Sink) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// Count returns how many times op was recorded.
func (m *Sink) Count(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears recorded calls and keeps configured behavior.
func (m *Sink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = []Call{}
}

func (m *Sink) Debug(args ...any) { m.record(OpDebug, args) }
func (m *Sink) Info(args ...any)  { m.record(OpInfo, args) }
func (m *Sink) Log(args ...any)   { m.record(OpLog, args) }
func (m *Sink) Warn(args ...any)  { m.record(OpWarn, args) }
func (m *Sink) Error(args ...any) { m.record(OpError, args) }
func (m *Sink) Group(label ...any) {
	m.record(OpGroup, label)
}
func (m *Sink) GroupEnd() { m.record(OpGroupEnd, nil) }

func (m *Sink) record(op string, args []any) {
	m.mu.Lock()
	m.Calls = append(m.Calls, Call{Op: op, Args: append([]any(nil), args...)})
	v, ok := m.panics[op]
	m.mu.Unlock()

	if ok {
		panic(v)
	}
}
