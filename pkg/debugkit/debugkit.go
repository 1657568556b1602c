// Package debugkit is the trace/info/error channel attached to a sequence.
//
// A Channel formats a message only when a sink is registered and the message level passes the threshold.
// Trace messages come in begin/end pairs around a nested operation:
// TraceBegin reports the current depth and then descends,
// TraceEnd ascends first and then reports, so both ends of a pair print the same depth.
package debugkit

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/sequential/pkg/tag"
)

const ErrLevel errorkit.Error = "invalid debug level"

const DefaultLevel = tag.Error

func errorF(err errorkit.Error, format string, a ...any) error {
	return errorkit.WithoutTrace(err.F(format, a...))
}

// SinkFunc receives every emitted message together with the opaque data registered beside it.
type SinkFunc func(level tag.Tag, msg string, data any)

type Channel struct {
	Sink SinkFunc
	// Data is handed to the Sink untouched, e.g. the output stream of the Writer sink.
	Data any
	// Level is the threshold. Messages with a level ordinal above it are dropped.
	// The zero value means DefaultLevel.
	Level   tag.Tag
	Prefix  string
	Postfix string

	depth int
}

func (c *Channel) SetSink(sink SinkFunc, data any) {
	c.Sink = sink
	c.Data = data
}

func (c *Channel) SetLevel(level tag.Tag) error {
	if !tag.Belongs(level, tag.LevelCategory) {
		return errorF(ErrLevel, "%s is not a level", level)
	}
	c.Level = level
	return nil
}

func (c *Channel) Depth() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Enabled reports whether a message on the given level would reach the sink.
func (c *Channel) Enabled(level tag.Tag) bool {
	if c == nil || c.Sink == nil {
		return false
	}
	return level.Ordinal() <= c.threshold().Ordinal()
}

func (c *Channel) threshold() tag.Tag {
	if !tag.Belongs(c.Level, tag.LevelCategory) {
		return DefaultLevel
	}
	return c.Level
}

func (c *Channel) TraceBegin(format string, args ...any) {
	if c == nil {
		return
	}
	c.emit(tag.Trace, format, args)
	c.depth++
}

func (c *Channel) TraceEnd(format string, args ...any) {
	if c == nil {
		return
	}
	c.depth--
	c.emit(tag.Trace, format, args)
}

func (c *Channel) Info(format string, args ...any) {
	c.emit(tag.Info, format, args)
}

func (c *Channel) Error(format string, args ...any) {
	c.emit(tag.Error, format, args)
}

func (c *Channel) emit(level tag.Tag, format string, args []any) {
	if !c.Enabled(level) {
		return
	}
	var msg strings.Builder
	msg.WriteString(c.Prefix)
	fmt.Fprintf(&msg, "[%s] ", level)
	fmt.Fprintf(&msg, format, args...)
	msg.WriteString(c.Postfix)
	fmt.Fprintf(&msg, " (depth=%d)\n", c.depth)
	c.Sink(level, msg.String(), c.Data)
}

// ParseLevel maps a level name such as "trace" to its tag.
func ParseLevel(name string) (tag.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return tag.Error, nil
	case "info":
		return tag.Info, nil
	case "trace":
		return tag.Trace, nil
	default:
		return 0, errorF(ErrLevel, "unknown level name: %q", name)
	}
}
