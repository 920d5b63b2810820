package logging

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "logging"

	// DefaultNamespace is used when Config.Namespace is empty.
	DefaultNamespace = "tarmac"

	fnDebug = "Debug"
	fnInfo  = "Info"
	fnWarn  = "Warn"
	fnError = "Error"

	groupSeparator = " > "
)

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")
)

// HostCall defines the waPC host function signature used by the sink.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Sink interacts with the host runtime.
type Config struct {
	// Namespace scopes host calls. Defaults to DefaultNamespace.
	Namespace string

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall

	// OnError receives host call failures wrapped in ErrHostCall. Failures
	// are dropped when nil.
	OnError func(error)
}

// Sink forwards log output to the Tarmac host logging capability. Open
// groups prefix every payload with their labels.
type Sink struct {
	namespace string
	hostCall  HostCall
	onError   func(error)

	mu     sync.Mutex
	groups []string
}

// New creates a Sink that emits logs through the configured host capability.
func New(cfg Config) (*Sink, error) {
	s := &Sink{
		namespace: cfg.Namespace,
		hostCall:  cfg.HostCall,
		onError:   cfg.OnError,
	}

	if s.namespace == "" {
		s.namespace = DefaultNamespace
	}

	if s.hostCall == nil {
		s.hostCall = wapc.HostCall
	}

	return s, nil
}

// Debug sends args to the host Debug function.
func (s *Sink) Debug(args ...any) { s.log(fnDebug, args) }

// Info sends args to the host Info function.
func (s *Sink) Info(args ...any) { s.log(fnInfo, args) }

// Log sends args to the host Info function.
func (s *Sink) Log(args ...any) { s.log(fnInfo, args) }

// Warn sends args to the host Warn function.
func (s *Sink) Warn(args ...any) { s.log(fnWarn, args) }

// Error sends args to the host Error function.
func (s *Sink) Error(args ...any) { s.log(fnError, args) }

// Group pushes label onto the prefix stack. The host has no group concept,
// so nothing is sent.
func (s *Sink) Group(label ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, join(label))
}

// GroupEnd pops the innermost group label.
func (s *Sink) GroupEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

func (s *Sink) log(fn string, args []any) {
	msg := join(args)

	s.mu.Lock()
	if len(s.groups) > 0 {
		msg = strings.Join(s.groups, groupSeparator) + ": " + msg
	}
	s.mu.Unlock()

	if _, err := s.hostCall(s.namespace, capabilityName, fn, []byte(msg)); err != nil && s.onError != nil {
		s.onError(fmt.Errorf("%w: %s: %w", ErrHostCall, fn, err))
	}
}

// join formats args the way a console does: operands separated by spaces.
func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
