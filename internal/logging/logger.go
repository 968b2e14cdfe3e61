// Package logging builds the zap logger handed to the wizard and exporter.
// The interactive UI owns the terminal, so there the log goes to a file or
// nowhere; batch commands log to stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"resume-wizard/internal/config"
)

// Mode selects where log lines go.
type Mode int

const (
	Interactive Mode = iota
	Batch
)

func New(cfg config.LoggingConfig, mode Mode) (*zap.Logger, error) {
	if cfg.Level == "off" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	switch mode {
	case Interactive:
		if cfg.File == "" {
			return zap.NewNop(), nil
		}
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	default:
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
