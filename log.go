package richedit

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used for diagnostics. Passing nil disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}
