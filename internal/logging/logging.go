// Package logging builds folio's zap logger. The TUI owns the terminal, so
// logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	Path    string // log file; empty disables logging
	Level   string // debug, info, warn, error or off
	Verbose bool   // forces debug
}

// New returns a file logger, or a no-op logger when logging is off.
// The returned error explains why a requested file logger could not be
// built; the logger is still usable (no-op) in that case.
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" || (opts.Level == "off" && !opts.Verbose) {
		return zap.NewNop(), nil
	}
	level := zapcore.InfoLevel
	if opts.Level != "" && opts.Level != "off" {
		if err := level.Set(opts.Level); err != nil {
			return zap.NewNop(), fmt.Errorf("parsing log level: %w", err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return zap.NewNop(), fmt.Errorf("creating log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{opts.Path}
	config.ErrorOutputPaths = []string{opts.Path}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
