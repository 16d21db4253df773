// Package logger provides structured logging via the Uber zap library.
// The TUI owns the terminal, so log output goes to a file.
package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide SugaredLogger. It defaults to a no-op logger so
// packages may log before Init runs (and in tests).
var Log = zap.NewNop().Sugar()

// Init configures Log with the given level, writing to path. An empty
// path discards output.
func Init(level, path string) error {
	if path == "" {
		Log = zap.NewNop().Sugar()
		return nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
