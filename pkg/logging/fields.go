package logging

import "github.com/rs/zerolog"

const (
	FieldComponent = "component"
	FieldIterator  = "iterator"
	FieldSnapshot  = "snapshot_id"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(zerolog.Context) zerolog.Context
}

type detailFunc func(zerolog.Context) zerolog.Context

func (fn detailFunc) addTo(c zerolog.Context) zerolog.Context { return fn(c) }

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return detailFunc(func(c zerolog.Context) zerolog.Context {
		return c.Interface(key, value)
	})
}

// ErrField adds the error under the conventional "error" key.
func ErrField(err error) Detail {
	return detailFunc(func(c zerolog.Context) zerolog.Context {
		return c.Err(err)
	})
}

// With returns a child logger enriched with the details.
func With(l zerolog.Logger, ds ...Detail) zerolog.Logger {
	if len(ds) == 0 {
		return l
	}
	c := l.With()
	for _, d := range ds {
		if d == nil {
			continue
		}
		c = d.addTo(c)
	}
	return c.Logger()
}
