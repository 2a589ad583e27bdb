package xlog

import "go.uber.org/zap"

// Logger is the queue's optional debug logger -- trimmed from the
// teacher's zap-based console/common core pair down to the single sink a
// standalone data structure needs.
type Logger struct {
	z *zap.Logger
}

// Nop returns a Logger that discards everything, the default for a Queue
// built without WithLogger.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Wrap adapts a caller-supplied *zap.Logger.
func Wrap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
