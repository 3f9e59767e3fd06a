package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values yield INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

type Logger struct {
	mu    sync.RWMutex
	level Level
	log   *log.Logger
}

func New(level Level) *Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level Level, w io.Writer) *Logger {
	return &Logger{
		level: level,
		log:   log.New(w, "", 0),
	}
}

func (l *Logger) formatMessage(level Level, format string, v ...interface{}) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, v...)
	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
}

func (l *Logger) enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level <= level
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.enabled(DEBUG) {
		l.log.Print(l.formatMessage(DEBUG, format, v...))
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.enabled(INFO) {
		l.log.Print(l.formatMessage(INFO, format, v...))
	}
}

func (l *Logger) Warn(format string, v ...interface{}) {
	if l.enabled(WARN) {
		l.log.Print(l.formatMessage(WARN, format, v...))
	}
}

func (l *Logger) Error(format string, v ...interface{}) {
	if l.enabled(ERROR) {
		l.log.Print(l.formatMessage(ERROR, format, v...))
	}
}

func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal(l.formatMessage(FATAL, format, v...))
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// GetLevel returns current logging level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput redirects the logger, mostly useful in tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

var defaultLogger = New(INFO)

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger }

func Debug(format string, v ...interface{}) { defaultLogger.Debug(format, v...) }
func Info(format string, v ...interface{})  { defaultLogger.Info(format, v...) }
func Warn(format string, v ...interface{})  { defaultLogger.Warn(format, v...) }
func Error(format string, v ...interface{}) { defaultLogger.Error(format, v...) }
func Fatal(format string, v ...interface{}) { defaultLogger.Fatal(format, v...) }

// SetGlobalLevel sets the level for the global logger
func SetGlobalLevel(level Level) {
	defaultLogger.SetLevel(level)
}
