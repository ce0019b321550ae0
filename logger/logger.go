package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type Logger struct {
	service string
	handler *slog.Logger
}

func New(service string) *Logger {
	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service: service,
		handler: handler,
	}
}

func (l *Logger) Info(action, message string) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelInfo,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("action", action),
	)
}

func (l *Logger) Error(action, message string, err error) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelError,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}
