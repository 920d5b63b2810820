package tinylog

import (
	"fmt"
	"strings"
)

// Level is the severity of a message. Higher levels are less noisy.
type Level int

// The zero Level is unset and resolves to LevelWarn when passed to New.
const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelSilent is only meaningful as a Config level; it suppresses all output.
	LevelSilent
)

var levelNames = map[Level]string{
	LevelDebug:  "debug",
	LevelInfo:   "info",
	LevelWarn:   "warn",
	LevelError:  "error",
	LevelFatal:  "fatal",
	LevelSilent: "silent",
}

// String returns the lower-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelSilent
}

// ParseLevel returns the Level for a name such as "info" or "SILENT".
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config decoders can
// fill Level fields from names.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Channel names a Sink output method.
type Channel int

const (
	ChannelDebug Channel = iota
	ChannelInfo
	ChannelLog
	ChannelWarn
	ChannelError
)

func (c Channel) String() string {
	switch c {
	case ChannelDebug:
		return "debug"
	case ChannelInfo:
		return "info"
	case ChannelLog:
		return "log"
	case ChannelWarn:
		return "warn"
	case ChannelError:
		return "error"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// ChannelFor returns the Sink channel that receives messages of level l.
// Fatal messages go to the error channel; sinks have no fatal channel.
func ChannelFor(l Level) Channel {
	switch l {
	case LevelDebug:
		return ChannelDebug
	case LevelInfo:
		return ChannelInfo
	case LevelWarn:
		return ChannelWarn
	default:
		return ChannelError
	}
}
