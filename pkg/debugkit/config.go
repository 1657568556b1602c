package debugkit

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrOutput errorkit.Error = "unknown debug output"

// Config describes a Channel through environment variables.
type Config struct {
	Level   string `env:"SEQUENTIAL_DEBUG_LEVEL" enum:"trace;info;error;" default:"error"`
	Output  string `env:"SEQUENTIAL_DEBUG_OUTPUT" enum:"none;stdout;stderr;" default:"none"`
	Prefix  string `env:"SEQUENTIAL_DEBUG_PREFIX"`
	Postfix string `env:"SEQUENTIAL_DEBUG_POSTFIX"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply configures the channel. Nothing changes when the config is invalid.
func (c Config) Apply(ch *Channel) error {
	var level = DefaultLevel
	if c.Level != "" {
		l, err := ParseLevel(c.Level)
		if err != nil {
			return err
		}
		level = l
	}
	var sink SinkFunc
	switch c.Output {
	case "", "none":
	case "stdout":
		sink = Stdout
	case "stderr":
		sink = Stderr
	default:
		return errorF(ErrOutput, "%q", c.Output)
	}
	ch.Level = level
	ch.Prefix = c.Prefix
	ch.Postfix = c.Postfix
	if sink != nil {
		ch.SetSink(sink, nil)
	}
	return nil
}
