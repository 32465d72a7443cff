package dump

import (
	"flag"
	"fmt"
	"os"
)

// Progress modes.
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// Config defines the options of a dump run.
type Config struct {
	// Output is the file receiving the ROM, empty for stdout.
	Output string
	// Progress selects how progress is printed on stderr.
	Progress string
}

var defaultConfig = Config{
	Progress: ProgressAuto,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Output, "o", defaultConfig.Output, "Write ROM to file instead of stdout.")
	flag.StringVar(&defaultConfig.Progress, "progress", defaultConfig.Progress, "Progress display: auto, always or never.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks the config values.
func (c *Config) Validate() error {
	switch c.Progress {
	case ProgressAuto, ProgressAlways, ProgressNever:
		return nil
	}
	return fmt.Errorf("invalid progress mode %q", c.Progress)
}

// NewReporter creates the progress reporter writing to f.
func (c *Config) NewReporter(f *os.File) Reporter {
	switch c.Progress {
	case ProgressNever:
		return NopReporter{}
	case ProgressAlways:
		return &TerminalReporter{Writer: f, Overwrite: true}
	}
	return NewTerminalReporter(f)
}

// OpenOutput opens the output destination. The returned close func must be
// called when the dump finishes.
func (c *Config) OpenOutput() (*os.File, func() error, error) {
	if c.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
