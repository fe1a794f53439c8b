package detour

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logger receives tile install/remove/link-assembly diagnostics. It starts
// as a no-op so importing this package never forces a consumer to configure
// logging; call SetLogger to wire in a real one.
var logger *zap.Logger = zap.NewNop()

// SetLogger replaces the package-level diagnostics logger. Pass nil to go
// back to a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// NewRotatingWriteSyncer wraps lumberjack as a zapcore.WriteSyncer so a
// consumer can point this package's diagnostics (or their own) at a
// size/age-rotated log file without this module taking an opinion on log
// destinations.
func NewRotatingWriteSyncer(path string, maxSizeMB, maxBackups, maxAgeDays int) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})
}
