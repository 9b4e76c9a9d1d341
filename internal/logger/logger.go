package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the application wide logger. It defaults to a no-op logger so that
// packages may log before Init has run, as happens in unit tests.
var L = zap.NewNop()

// Init replaces L with a logger writing at the given level. The format is
// either "json" for production output or "console" for local development.
func Init(level string, format string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = format
	if format == "console" {
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	built, err := cfg.Build()
	if err != nil {
		return err
	}
	L = built
	return nil
}
