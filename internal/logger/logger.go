package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger tags every entry with the component that produced it.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a LogLevel.
func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, true
	case "info", "":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StructuredLogger writes JSON lines through log/slog.
type StructuredLogger struct {
	logger *slog.Logger
	level  LogLevel
}

func NewJSONLogger(level LogLevel, writer io.Writer) *StructuredLogger {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level.slogLevel(),
	})

	return &StructuredLogger{
		logger: slog.New(handler),
		level:  level,
	}
}

func (l *StructuredLogger) Debug(component, message string, fields map[string]interface{}) {
	if l.level > DebugLevel {
		return
	}
	l.logWithFields(slog.LevelDebug, component, message, fields)
}

func (l *StructuredLogger) Info(component, message string, fields map[string]interface{}) {
	if l.level > InfoLevel {
		return
	}
	l.logWithFields(slog.LevelInfo, component, message, fields)
}

func (l *StructuredLogger) Warning(component, message string, fields map[string]interface{}) {
	if l.level > WarnLevel {
		return
	}
	l.logWithFields(slog.LevelWarn, component, message, fields)
}

func (l *StructuredLogger) Error(component string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	l.logWithFields(slog.LevelError, component, "operation failed", fields)
}

func (l *StructuredLogger) logWithFields(level slog.Level, component, message string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, "component", component)
	for k, v := range fields {
		args = append(args, k, v)
	}
	l.logger.Log(context.Background(), level, message, args...)
}

// NoOpLogger discards everything. The terminal front-end uses it when no log
// file is configured, since stdout belongs to the UI there.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, string, map[string]interface{})   {}
func (NoOpLogger) Info(string, string, map[string]interface{})    {}
func (NoOpLogger) Warning(string, string, map[string]interface{}) {}
func (NoOpLogger) Error(string, error, map[string]interface{})    {}
