// Package obslog provides textguard's process-wide structured logger: a
// go.uber.org/zap logger with a console sink and an optional rotating
// file sink backed by gopkg.in/natefinch/lumberjack.v2, following the
// sink/core-building idiom the logging-heavy repos in the reference
// corpus use rather than the standard library's log package.
package obslog

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink configures the optional rotating file core. A zero value means
// "no file sink": only console output is produced.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu      sync.Mutex
	current *zap.Logger
)

func init() {
	current = buildLogger(FileSink{})
}

// Configure replaces the process-wide logger with one that also writes to
// the given rotating file sink. Safe to call concurrently with L(); later
// calls win.
func Configure(file FileSink) {
	mu.Lock()
	defer mu.Unlock()
	current = buildLogger(file)
}

// L returns the current process-wide logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func buildLogger(file FileSink) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.InfoLevel),
		),
	}

	if file.Path != "" {
		lumber := &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   file.Compress,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(lumber),
			zap.NewAtomicLevelAt(zapcore.InfoLevel),
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.Fields(zap.String("service", "textguard")))
}
