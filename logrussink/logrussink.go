// Package logrussink adapts a *logrus.Logger to the tinylog.Sink interface so
// a tinylog Logger can write through an existing logrus setup.
//
// Level filtering is done by the tinylog Logger; the logrus logger's own level
// still applies on top, so set it to logrus.DebugLevel to see everything.
package logrussink

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// GroupField is the entry field carrying the open group labels.
const GroupField = "group"

// Sink writes to a logrus logger.
type Sink struct {
	logger *logrus.Logger

	mu     sync.Mutex
	groups []string
}

// New returns a Sink over l, or over logrus.StandardLogger() when l is nil.
func New(l *logrus.Logger) *Sink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Sink{logger: l}
}

// Debug logs args at logrus.DebugLevel.
func (s *Sink) Debug(args ...any) { s.log(logrus.DebugLevel, args) }

// Info logs args at logrus.InfoLevel.
func (s *Sink) Info(args ...any) { s.log(logrus.InfoLevel, args) }

// Log logs args at logrus.InfoLevel.
func (s *Sink) Log(args ...any) { s.log(logrus.InfoLevel, args) }

// Warn logs args at logrus.WarnLevel.
func (s *Sink) Warn(args ...any) { s.log(logrus.WarnLevel, args) }

// Error logs args at logrus.ErrorLevel.
func (s *Sink) Error(args ...any) { s.log(logrus.ErrorLevel, args) }

// Group adds label to the GroupField of subsequent entries.
func (s *Sink) Group(label ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, strings.TrimSuffix(fmt.Sprintln(label...), "\n"))
}

// GroupEnd drops the innermost group label.
func (s *Sink) GroupEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

func (s *Sink) log(level logrus.Level, args []any) {
	msg := strings.TrimSuffix(fmt.Sprintln(args...), "\n")

	s.mu.Lock()
	group := strings.Join(s.groups, " > ")
	s.mu.Unlock()

	if group == "" {
		s.logger.Log(level, msg)
		return
	}
	s.logger.WithField(GroupField, group).Log(level, msg)
}
