package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log entry
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a LogLevel, defaulting to info.
func ParseLevel(name string) LogLevel {
	switch name {
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

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	RequestID string                 `json:"request_id,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Service   string                 `json:"service,omitempty"`
}

// Logger writes structured JSON log entries
type Logger struct {
	level   LogLevel
	output  io.Writer
	service string
	mutex   sync.RWMutex
}

// Config holds logger configuration
type Config struct {
	Level   LogLevel
	Output  io.Writer
	Service string
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:   LevelInfo,
		Output:  os.Stdout,
		Service: "admin-sdk",
	}
}

// NewLogger creates a new logger instance
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Service == "" {
		config.Service = "admin-sdk"
	}

	return &Logger{
		level:   config.Level,
		output:  config.Output,
		service: config.Service,
	}
}

// Global logger instance
var defaultLogger *Logger
var once sync.Once

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger(DefaultConfig())
	})
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

func (l *Logger) shouldLog(level LogLevel) bool {
	return level >= l.GetLevel()
}

func (l *Logger) log(ctx context.Context, level LogLevel, message string, fields map[string]interface{}, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level.String(),
		Message:   message,
		Service:   l.service,
		Fields:    fields,
	}

	if requestID := GetRequestIDFromContext(ctx); requestID != "" {
		entry.RequestID = requestID
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		data = []byte(fmt.Sprintf(`{"timestamp":"%s","level":"%s","message":"JSON marshal error: %v","service":"%s"}`,
			entry.Timestamp.Format(time.RFC3339), entry.Level, marshalErr, l.service))
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output.Write(data)
	l.output.Write([]byte("\n"))
}

// WithFields returns a logger that attaches fields to every entry
func (l *Logger) WithFields(fields map[string]interface{}) *FieldLogger {
	return &FieldLogger{logger: l, fields: fields}
}

// WithField returns a logger that attaches one field to every entry
func (l *Logger) WithField(key string, value interface{}) *FieldLogger {
	return l.WithFields(map[string]interface{}{key: value})
}

// Debug logs a debug message
func (l *Logger) Debug(ctx context.Context, message string) {
	l.log(ctx, LevelDebug, message, nil, nil)
}

// Info logs an info message
func (l *Logger) Info(ctx context.Context, message string) {
	l.log(ctx, LevelInfo, message, nil, nil)
}

// Warn logs a warning message
func (l *Logger) Warn(ctx context.Context, message string) {
	l.log(ctx, LevelWarn, message, nil, nil)
}

// Error logs an error message
func (l *Logger) Error(ctx context.Context, message string, err error) {
	l.log(ctx, LevelError, message, nil, err)
}

// FieldLogger carries a field set to attach to log entries
type FieldLogger struct {
	logger *Logger
	fields map[string]interface{}
}

// WithField adds another field to the set
func (c *FieldLogger) WithField(key string, value interface{}) *FieldLogger {
	merged := make(map[string]interface{}, len(c.fields)+1)
	for k, v := range c.fields {
		merged[k] = v
	}
	merged[key] = value
	return &FieldLogger{logger: c.logger, fields: merged}
}

// Debug logs a debug message with the attached fields
func (c *FieldLogger) Debug(ctx context.Context, message string) {
	c.logger.log(ctx, LevelDebug, message, c.fields, nil)
}

// Info logs an info message with the attached fields
func (c *FieldLogger) Info(ctx context.Context, message string) {
	c.logger.log(ctx, LevelInfo, message, c.fields, nil)
}

// Warn logs a warning message with the attached fields
func (c *FieldLogger) Warn(ctx context.Context, message string) {
	c.logger.log(ctx, LevelWarn, message, c.fields, nil)
}

// Error logs an error message with the attached fields
func (c *FieldLogger) Error(ctx context.Context, message string, err error) {
	c.logger.log(ctx, LevelError, message, c.fields, err)
}
