// Package logging provides structured logging for iterbridge on top of zerolog.
// With logging, you can use context to add logging details to your call stack.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var global = struct {
	mutex  sync.RWMutex
	logger zerolog.Logger
}{logger: zerolog.Nop()}

// New creates a zerolog.Logger from the configuration.
// Invalid configuration values fall back to their defaults.
func New(cfg Config) zerolog.Logger {
	cfg.ApplyDefaults()
	level, err := cfg.Level.zerolog()
	if err != nil {
		level = zerolog.InfoLevel
	}
	out := writer(cfg.Output)
	var l zerolog.Logger
	if cfg.Format == FormatConsole {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true})
	} else {
		l = zerolog.New(out)
	}
	l = l.Level(level)
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}
	return l
}

// NewTo creates a JSON logger that writes to the given writer.
func NewTo(out io.Writer, level Level) zerolog.Logger {
	zl, err := level.zerolog()
	if err != nil {
		zl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(zl)
}

func writer(output string) io.Writer {
	switch output {
	case OutputStdout:
		return os.Stdout
	case OutputDiscard:
		return io.Discard
	default:
		return os.Stderr
	}
}

// Get returns the package level logger.
// Until Set is called, it is a no-op logger, so library code stays silent by default.
func Get() *zerolog.Logger {
	global.mutex.RLock()
	defer global.mutex.RUnlock()
	l := global.logger
	return &l
}

// Set replaces the package level logger.
func Set(l zerolog.Logger) {
	global.mutex.Lock()
	defer global.mutex.Unlock()
	global.logger = l
}

// Component returns the package level logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Get().With().Str(FieldComponent, name).Logger()
}
