// Package config loads dbtable settings from a TOML file. Values set on
// the command line take precedence over the file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the content of a dbtable configuration file:
//
//	[input]
//	format = "auto"   # auto, csv or xlsx
//	sheet = "Sheet1"
//	range = "A1:D10"
//
//	[output]
//	pretty = true
//
//	[log]
//	level = "warn"
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig controls how tables are loaded.
type InputConfig struct {
	// Format is "auto", "csv" or "xlsx".
	Format string `toml:"format"`
	// Sheet is the xlsx sheet to read. Empty means the first sheet.
	Sheet string `toml:"sheet"`
	// Range is an optional A1 range restricting xlsx input.
	Range string `toml:"range"`
}

// OutputConfig controls exported files.
type OutputConfig struct {
	// Pretty indents JSON output.
	Pretty bool `toml:"pretty"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `toml:"level"`
}

var validFormats = map[string]bool{"auto": true, "csv": true, "xlsx": true}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{Format: "auto"},
		Log:   LogConfig{Level: "warn"},
	}
}

// Load reads a TOML file on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !validFormats[c.Input.Format] {
		return fmt.Errorf("invalid input format %q (must be auto, csv or xlsx)", c.Input.Format)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// NewLogger builds a console logger writing to stderr at the configured
// level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
