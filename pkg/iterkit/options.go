package iterkit

import (
	"math"

	"github.com/rs/zerolog"

	"go.llib.dev/iterbridge/pkg/logging"
)

// Config holds the optional settings of the adapters.
type Config[T any] struct {
	// Equality compares produced values against the sentinel.
	// Default: DeepEqual[T]()
	Equality Equality[T]
	// Logger receives the lifecycle events of the adapter at debug level.
	// Default: the package level logger of the logging package.
	Logger *zerolog.Logger
	// MaxIndex is the largest cursor value a SequenceIterator may index with.
	// Default: math.MaxInt
	MaxIndex int
}

func (c *Config[T]) Init() {
	c.Equality = DeepEqual[T]()
	c.MaxIndex = math.MaxInt
}

func (c Config[T]) logger(iterator string) zerolog.Logger {
	l := logging.Component("iterkit")
	if c.Logger != nil {
		l = *c.Logger
	}
	return l.With().Str(logging.FieldIterator, iterator).Logger()
}

type Option[T any] interface {
	Configure(*Config[T])
}

type optionFunc[T any] func(*Config[T])

func (fn optionFunc[T]) Configure(c *Config[T]) { fn(c) }

// WithEquality sets the equality protocol used for sentinel comparison.
func WithEquality[T any](eq Equality[T]) Option[T] {
	return optionFunc[T](func(c *Config[T]) {
		if eq != nil {
			c.Equality = eq
		}
	})
}

// WithLogger sets the logger that receives the adapter's lifecycle events.
func WithLogger[T any](l zerolog.Logger) Option[T] {
	return optionFunc[T](func(c *Config[T]) { c.Logger = &l })
}

// WithMaxIndex sets the overflow ceiling of a SequenceIterator's cursor.
func WithMaxIndex[T any](n int) Option[T] {
	return optionFunc[T](func(c *Config[T]) {
		if 0 <= n {
			c.MaxIndex = n
		}
	})
}

func toConfig[T any](opts []Option[T]) Config[T] {
	var c Config[T]
	c.Init()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Configure(&c)
	}
	return c
}
