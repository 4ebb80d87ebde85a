package logger

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var log atomic.Pointer[slog.Logger]

func init() {
	log.Store(newLogger("development"))
}

// Init sets the process logger. "development" gets readable text at debug
// level, anything else JSON at info level.
func Init(env string) {
	l := newLogger(env)
	log.Store(l)
	slog.SetDefault(l)
}

func newLogger(env string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func GetLogger() *slog.Logger {
	return log.Load()
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}
