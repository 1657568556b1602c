package debugkit

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/sequential/pkg/tag"
	"go.uber.org/zap"
)

var (
	_ SinkFunc = Stdout
	_ SinkFunc = Stderr
	_ SinkFunc = Writer
	_ SinkFunc = Logging
	_ SinkFunc = Zap
	_ SinkFunc = Zerolog
)

func Stdout(_ tag.Tag, msg string, _ any) {
	_, _ = io.WriteString(os.Stdout, msg)
}

func Stderr(_ tag.Tag, msg string, _ any) {
	_, _ = io.WriteString(os.Stderr, msg)
}

// Writer writes to the io.Writer registered as the sink data.
func Writer(_ tag.Tag, msg string, data any) {
	w, ok := data.(io.Writer)
	if !ok || w == nil {
		return
	}
	_, _ = io.WriteString(w, msg)
}

// Logging forwards messages to a *logging.Logger registered as the sink data.
// TRACE maps to the debug level, so the logger's own Level must allow it.
func Logging(level tag.Tag, msg string, data any) {
	l, ok := data.(*logging.Logger)
	if !ok || l == nil {
		return
	}
	var (
		ctx     = context.Background()
		message = strings.TrimSuffix(msg, "\n")
		field   = logging.Field("debug_level", level.String())
	)
	switch level {
	case tag.Trace:
		l.Debug(ctx, message, field)
	case tag.Info:
		l.Info(ctx, message, field)
	default:
		l.Error(ctx, message, field)
	}
}

// Zap forwards messages to a *zap.Logger registered as the sink data.
func Zap(level tag.Tag, msg string, data any) {
	l, ok := data.(*zap.Logger)
	if !ok || l == nil {
		return
	}
	message := strings.TrimSuffix(msg, "\n")
	switch level {
	case tag.Trace:
		l.Debug(message)
	case tag.Info:
		l.Info(message)
	default:
		l.Error(message)
	}
}

// Zerolog forwards messages to a zerolog.Logger (or pointer to one) registered as the sink data.
func Zerolog(level tag.Tag, msg string, data any) {
	var l *zerolog.Logger
	switch v := data.(type) {
	case zerolog.Logger:
		l = &v
	case *zerolog.Logger:
		l = v
	}
	if l == nil {
		return
	}
	message := strings.TrimSuffix(msg, "\n")
	switch level {
	case tag.Trace:
		l.Trace().Msg(message)
	case tag.Info:
		l.Info().Msg(message)
	default:
		l.Error().Msg(message)
	}
}
