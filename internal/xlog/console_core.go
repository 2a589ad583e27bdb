package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newConsoleCore mirrors the teacher's console sink: a level-gated,
// human-readable encoder writing to stdout. The file-rotation, gorm,
// go-redis, and ants-pool cores the teacher also builds are dropped --
// this module never touches a database, cache, or goroutine pool.
func newConsoleCore(lvl zapcore.Level) zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	return zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
}

// NewConsole builds a debug-oriented Logger writing to stdout at lvl.
func NewConsole(lvl zapcore.Level) *Logger {
	return &Logger{z: zap.New(newConsoleCore(lvl))}
}
