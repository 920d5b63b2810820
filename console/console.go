package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DefaultIndent is the per-group indentation used when Config.Indent is empty.
const DefaultIndent = "  "

// Config controls where a Console writes.
type Config struct {
	// Stdout receives debug, info and log output. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives warn and error output. Defaults to os.Stderr.
	Stderr io.Writer

	// Indent is repeated once per open group. Defaults to DefaultIndent.
	Indent string
}

// Console writes space-separated arguments line by line.
type Console struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	indent string
	depth  int
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process-wide Console over os.Stdout and os.Stderr.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New(Config{})
	})
	return defaultConsole
}

// New creates a Console with defaults applied for unset options.
func New(cfg Config) *Console {
	c := &Console{
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
		indent: cfg.Indent,
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if c.indent == "" {
		c.indent = DefaultIndent
	}
	return c
}

// Debug writes args to stdout.
func (c *Console) Debug(args ...any) { c.write(c.stdout, args) }

// Info writes args to stdout.
func (c *Console) Info(args ...any) { c.write(c.stdout, args) }

// Log writes args to stdout.
func (c *Console) Log(args ...any) { c.write(c.stdout, args) }

// Warn writes args to stderr.
func (c *Console) Warn(args ...any) { c.write(c.stderr, args) }

// Error writes args to stderr.
func (c *Console) Error(args ...any) { c.write(c.stderr, args) }

// Group prints label, if any, and indents the lines that follow.
func (c *Console) Group(label ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(label) > 0 {
		c.writeLocked(c.stdout, label)
	}
	c.depth++
}

// GroupEnd closes the innermost group. Extra calls are ignored.
func (c *Console) GroupEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth > 0 {
		c.depth--
	}
}

// Depth returns the number of open groups.
func (c *Console) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth
}

func (c *Console) write(w io.Writer, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLocked(w, args)
}

func (c *Console) writeLocked(w io.Writer, args []any) {
	line := fmt.Sprintln(args...)
	_, _ = io.WriteString(w, strings.Repeat(c.indent, c.depth)+line)
}
