// Package logging provides the process's structured JSON line logger.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger writes one JSON object per line. WithComponent returns a
// derived logger; derived loggers share the writer and its mutex.
type Logger struct {
	level     Level
	component string
	mu        *sync.Mutex
	w         io.Writer
}

// NewLogger returns a stdout logger filtered at the given level.
func NewLogger(level string) *Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter is NewLogger with an injected writer, used by
// tests and by callers that capture output.
func NewLoggerWithWriter(level string, w io.Writer) *Logger {
	return &Logger{level: parseLevel(level), mu: &sync.Mutex{}, w: w}
}

// WithComponent returns a copy tagging every record with the component.
func (l *Logger) WithComponent(name string) *Logger {
	cp := *l
	cp.component = name
	return &cp
}

func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg, nil) }
func (l *Logger) Info(msg string)  { l.log(LevelInfo, msg, nil) }
func (l *Logger) Warn(msg string)  { l.log(LevelWarn, msg, nil) }
func (l *Logger) Error(msg string) { l.log(LevelError, msg, nil) }

func (l *Logger) Debugw(msg string, fields map[string]any) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Infow(msg string, fields map[string]any)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warnw(msg string, fields map[string]any)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Errorw(msg string, fields map[string]any) { l.log(LevelError, msg, fields) }

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	if level < l.level {
		return
	}
	rec := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		rec[k] = v
	}
	rec["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	rec["level"] = level.String()
	rec["msg"] = msg
	if l.component != "" {
		rec["component"] = l.component
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(data, '\n'))
}
