/*
Package mock provides a recording implementation of the tinylog.Sink interface
for testing code that logs.

Every channel invocation is appended to Calls, so tests can assert on exactly
which channels were hit, in what order and with which arguments, without
parsing console output.

# Basic Usage

	import (
		"testing"

		"github.com/tarmac-project/tinylog"
		"github.com/tarmac-project/tinylog/mock"
	)

	func TestSomething(t *testing.T) {
		m := mock.New()
		log, _ := tinylog.New(tinylog.Config{Level: tinylog.LevelInfo, Stream: m})
		log.Info("hello")
		// assert len(m.Calls) == 1 && m.Calls[0].Op == mock.OpInfo
	}

# Overriding Behavior

Make a channel panic to exercise failure paths:

	m.On(mock.OpGroup).Panic("sink closed")
*/
package mock
