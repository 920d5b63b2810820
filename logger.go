package tinylog

import (
	"fmt"
	"time"

	"github.com/tarmac-project/tinylog/console"
)

const (
	// DefaultName is used when Config.Name is empty.
	DefaultName = "app"

	// DefaultLevel is used when Config.Level is unset.
	DefaultLevel = LevelWarn
)

// Sink receives formatted output through one method per channel.
type Sink interface {
	Debug(args ...any)
	Info(args ...any)
	Log(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Group(label ...any)
	GroupEnd()
}

var _ Sink = (*console.Console)(nil)

// Message is handed to the Formatter for every emitted call.
type Message struct {
	// Level is the level the message was logged at.
	Level Level

	// Name is the owning logger's name.
	Name string

	// Time is when the message was created.
	Time time.Time

	// Content holds the caller's arguments in order.
	Content []any
}

// Formatter turns a Message into the arguments passed to a Sink channel.
type Formatter func(Message) []any

// Config controls how a Logger filters, formats and writes messages.
type Config struct {
	// Name identifies the logger in formatted output. Defaults to DefaultName.
	Name string

	// Level is the minimum level to emit. Defaults to DefaultLevel.
	Level Level

	// Format replaces the built-in Format function when set.
	Format Formatter

	// Stream receives output. Defaults to console.Default().
	Stream Sink

	// Now overrides the message clock.
	Now func() time.Time
}

// Logger writes messages at or above its configured level to a Sink.
// A Logger is immutable after New.
type Logger struct {
	name   string
	level  Level
	format Formatter
	stream Sink
	now    func() time.Time
}

// New creates a Logger, filling unset Config options with defaults.
func New(config Config) (*Logger, error) {
	l := &Logger{
		name:   DefaultName,
		level:  DefaultLevel,
		format: Format,
		now:    time.Now,
	}

	if config.Name != "" {
		l.name = config.Name
	}

	if config.Level != 0 {
		if !config.Level.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(config.Level))
		}
		l.level = config.Level
	}

	if config.Format != nil {
		l.format = config.Format
	}

	if config.Now != nil {
		l.now = config.Now
	}

	l.stream = config.Stream
	if l.stream == nil {
		l.stream = console.Default()
	}

	return l, nil
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// Level returns the minimum level the logger emits.
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Debug logs args if the logger level is LevelDebug.
func (l *Logger) Debug(args ...any) { l.log(LevelDebug, args) }

// Info logs args if the logger level is LevelInfo or lower.
func (l *Logger) Info(args ...any) { l.log(LevelInfo, args) }

// Log is an alias of Info.
func (l *Logger) Log(args ...any) { l.log(LevelInfo, args) }

// Warn logs args if the logger level is LevelWarn or lower.
func (l *Logger) Warn(args ...any) { l.log(LevelWarn, args) }

// Error logs args if the logger level is LevelError or lower.
func (l *Logger) Error(args ...any) { l.log(LevelError, args) }

// Fatal logs args if the logger level is LevelFatal or lower. It does not
// exit the process.
func (l *Logger) Fatal(args ...any) { l.log(LevelFatal, args) }

// Group opens a sink group labelled label, runs fn and closes the group.
// GroupEnd runs on every exit path, including a panic in the sink's Group or
// in fn, and fn's error is returned as is.
func (l *Logger) Group(label string, fn func() error) error {
	defer l.stream.GroupEnd()
	l.stream.Group(label)
	return fn()
}

func (l *Logger) log(level Level, args []any) {
	if !l.Enabled(level) {
		return
	}

	out := l.format(Message{
		Level:   level,
		Name:    l.name,
		Time:    l.now(),
		Content: args,
	})

	switch ChannelFor(level) {
	case ChannelDebug:
		l.stream.Debug(out...)
	case ChannelInfo:
		l.stream.Info(out...)
	case ChannelWarn:
		l.stream.Warn(out...)
	default:
		l.stream.Error(out...)
	}
}
