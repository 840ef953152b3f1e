package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

var levelMapping = map[Level]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
	LevelFatal: zerolog.FatalLevel,

	*new(Level): zerolog.InfoLevel, // zero Level value is considered as LevelInfo
}

func (ll Level) zerolog() (zerolog.Level, error) {
	zl, ok := levelMapping[ll]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("unknown logging level: %q", string(ll))
	}
	return zl, nil
}
