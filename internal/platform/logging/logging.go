package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"careernav/internal/platform/config"
)

// Options select where logs go. The TUI owns stdout/stderr, so interactive
// runs log to a file or nowhere.
type Options struct {
	Verbose     bool
	Interactive bool
}

// New builds the process logger from cfg.
func New(cfg config.LogConfig, opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var outputs []string
	switch {
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		outputs = []string{cfg.File}
	case opts.Verbose && !opts.Interactive:
		outputs = []string{"stderr"}
	default:
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = outputs
	zc.ErrorOutputPaths = outputs
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("careernav"), nil
}
