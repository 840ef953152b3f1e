package logging

import "fmt"

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

// Config contains logging configuration.
type Config struct {
	Level     Level  `toml:"level" mapstructure:"level"`
	Format    string `toml:"format" mapstructure:"format"`
	Output    string `toml:"output" mapstructure:"output"`
	Timestamp bool   `toml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		c.Output = OutputStderr
	}
}

// Validate validates logging configuration.
func (c Config) Validate() error {
	if _, err := c.Level.zerolog(); err != nil {
		return err
	}
	switch c.Format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("logging.format must be one of %v (got: %s)", []string{FormatJSON, FormatConsole}, c.Format)
	}
	switch c.Output {
	case OutputStdout, OutputStderr, OutputDiscard:
	default:
		return fmt.Errorf("logging.output must be one of %v (got: %s)",
			[]string{OutputStdout, OutputStderr, OutputDiscard}, c.Output)
	}
	return nil
}
