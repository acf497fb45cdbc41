package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects where logs go. An empty FilePath logs to stderr only.
type Config struct {
	FilePath string
	Debug    bool
}

var log = zap.NewNop().Sugar()

// Init builds the process logger: console-encoded, to stderr and, when a
// file is configured, to a rolling log file.
func Init(cfg Config) error {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if cfg.FilePath != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// L returns the process logger. It is a no-op logger until Init runs.
func L() *zap.SugaredLogger {
	return log
}

// Named returns a child logger for a subsystem.
func Named(name string) *zap.SugaredLogger {
	return log.Named(name)
}

// SetLogger replaces the process logger; tests use it to capture output.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	log = l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}
