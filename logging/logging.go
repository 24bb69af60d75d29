// Package logging builds the zap logger used by the gammapath command.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects verbosity and encoding.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool

	// Format is "console" (default) or "json".
	Format string

	// OutputPaths overrides the sinks; defaults to stderr.
	OutputPaths []string
}

// New returns a logger writing to stderr. Callers Sync it on exit.
func New(o Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(o.Format) {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", o.Format)
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if o.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(o.OutputPaths) > 0 {
		cfg.OutputPaths = o.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}

	return logger, nil
}
