package tinylog

import "strings"

// TimeLayout is the ISO-8601 layout Format uses, always in UTC.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Format is the default Formatter. It prefixes the content with
// "<timestamp> [<LEVEL>] <name>:".
func Format(m Message) []any {
	header := m.Time.UTC().Format(TimeLayout) + " [" + strings.ToUpper(m.Level.String()) + "] " + m.Name + ":"

	out := make([]any, 0, len(m.Content)+1)
	out = append(out, header)
	return append(out, m.Content...)
}

var _ Formatter = Format
