// Package logging builds the debug logger for interactive runs.
//
// Interactive output goes to stdout; the debug log must not interleave with
// it, so it is written to a file under the state directory instead.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stateDir is created under the user's home directory.
const stateDir = ".curator"

// New returns a debug logger. When CURATOR_DEBUG is unset (or the log file
// cannot be opened) it returns a no-op logger, so callers never branch on
// debug mode.
func New() *zap.Logger {
	if os.Getenv("CURATOR_DEBUG") == "" {
		return zap.NewNop()
	}

	path, err := logPath()
	if err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func logPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, stateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
