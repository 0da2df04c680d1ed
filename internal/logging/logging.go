// Package logging holds the generator's process-wide structured logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names, so log lines can be filtered consistently.
const (
	FieldSchema = "schema"
	FieldType   = "type"
	FieldFields = "fields"
	FieldShape  = "shape"
	FieldTarget = "target"
	FieldPath   = "path"
	FieldCount  = "count"
)

// Logger is the global logger. It is a no-op until Initialize is called, so
// packages may log unconditionally.
var Logger = zap.NewNop().Sugar()

// Initialize replaces the global logger. jsonOutput selects machine-readable
// JSON lines; otherwise a console encoder without timestamps is used. verbose
// lowers the level to debug.
func Initialize(verbose, jsonOutput bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var (
		zl  *zap.Logger
		err error
	)
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		zl, err = cfg.Build()
		if err != nil {
			return err
		}
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = ""
		enc.CallerKey = ""
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	Logger = zl.Sugar()
	return nil
}

// Sync flushes buffered log entries. Errors are ignored; stderr cannot
// always be synced.
func Sync() {
	_ = Logger.Sync()
}
