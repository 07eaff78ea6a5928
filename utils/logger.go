package utils

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// The process-wide logger. Console output always goes to stdout; when a
// log file is configured a rotating JSON sink is teed in alongside it.
var (
	globalLogger *zap.SugaredLogger
	logOnce      sync.Once
)

// InitLogger creates the singleton logger. Call once at startup.
// level is a zap level name ("debug", "info", ...); unknown values fall
// back to info. logFilePath may be empty for console-only logging.
func InitLogger(level, logFilePath string) *zap.SugaredLogger {
	logOnce.Do(func() {
		lvl := zapcore.InfoLevel
		if level != "" {
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				lvl = zapcore.InfoLevel
			}
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), lvl),
		}

		if logFilePath != "" {
			fileSink := zapcore.AddSync(&lumberjack.Logger{
				Filename:   logFilePath,
				MaxSize:    50, // MB
				MaxBackups: 3,
			})
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, lvl))
		}

		globalLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})
	return globalLogger
}

// L returns the global logger, initialising a stdout-only INFO logger if
// InitLogger has not been called yet.
func L() *zap.SugaredLogger {
	if globalLogger == nil {
		return InitLogger("info", "")
	}
	return globalLogger
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
