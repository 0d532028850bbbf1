package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "screencapture"

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a logger from the default factory. Levels follow the
// PION_LOG_* environment variables.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(Scope(scope))
}

// NewLoggerFrom returns a logger from f, or from the default factory when f
// is nil.
func NewLoggerFrom(f logging.LoggerFactory, scope string) logging.LeveledLogger {
	if f == nil {
		return NewLogger(scope)
	}
	return f.NewLogger(Scope(scope))
}

// Scope prefixes scope with the module name.
func Scope(scope string) string {
	if scope == "" {
		return scopePrefix
	}
	return scopePrefix + "/" + scope
}
