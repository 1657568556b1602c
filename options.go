package sequential

import (
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/sequential/pkg/debugkit"
	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
)

// AddFunc computes the stored payload from the raw operands of an add operation.
type AddFunc[T any] func(args *operand.Args) (T, error)

// RemoveFunc receives every payload that leaves the sequence, exactly once.
type RemoveFunc[T any] func(v T)

type Option[T any] option.Option[Config[T]]

// Config is the construction time setup of a Sequence.
// Everything here can also be changed later with Set.
type Config[T any] struct {
	OnAdd    AddFunc[T]
	OnRemove RemoveFunc[T]
	// Debug is applied first, so the explicit debug fields below override it.
	Debug        *debugkit.Config
	DebugSink    debugkit.SinkFunc
	DebugData    any
	DebugLevel   tag.Tag
	DebugPrefix  string
	DebugPostfix string
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.OnAdd != nil {
		o.OnAdd = c.OnAdd
	}
	if c.OnRemove != nil {
		o.OnRemove = c.OnRemove
	}
	if c.DebugSink != nil {
		o.DebugSink = c.DebugSink
		o.DebugData = c.DebugData
	}
	o.Debug = zerokit.Coalesce(c.Debug, o.Debug)
	o.DebugLevel = zerokit.Coalesce(c.DebugLevel, o.DebugLevel)
	o.DebugPrefix = zerokit.Coalesce(c.DebugPrefix, o.DebugPrefix)
	o.DebugPostfix = zerokit.Coalesce(c.DebugPostfix, o.DebugPostfix)
}

func WithOnAdd[T any](fn AddFunc[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.OnAdd = fn })
}

func WithOnRemove[T any](fn RemoveFunc[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.OnRemove = fn })
}

// WithDebug registers a debug sink together with the opaque data handed to it on every message.
func WithDebug[T any](sink debugkit.SinkFunc, data any, level tag.Tag) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.DebugSink = sink
		c.DebugData = data
		c.DebugLevel = level
	})
}

// WithDebugConfig sets up the debug channel from a debugkit.Config, such as the one from debugkit.LoadConfig.
func WithDebugConfig[T any](dc debugkit.Config) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Debug = &dc })
}

func (c Config[T]) apply(ch *debugkit.Channel) error {
	if c.Debug != nil {
		if err := c.Debug.Apply(ch); err != nil {
			return err
		}
	}
	if c.DebugSink != nil {
		ch.SetSink(c.DebugSink, c.DebugData)
	}
	if c.DebugLevel != 0 {
		if err := ch.SetLevel(c.DebugLevel); err != nil {
			return err
		}
	}
	if c.DebugPrefix != "" {
		ch.Prefix = c.DebugPrefix
	}
	if c.DebugPostfix != "" {
		ch.Postfix = c.DebugPostfix
	}
	return nil
}
