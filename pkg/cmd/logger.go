package cmd

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the logger used by the commands. Until SetLogger is
// called, or when --verbose is off, it discards everything.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the logger used by the commands. A nil logger
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
