package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Context keys
type contextKey string

const (
	RequestIDKey     contextKey = "request_id"
	CorrelationIDKey contextKey = "correlation_id"
	ComponentKey     contextKey = "component"
	StageKey         contextKey = "stage"
)

// Global logger instance
var Logger *slog.Logger

// Service configuration
var (
	ServiceName = "image-analysis-api"
	Environment = "development"
)

// Config holds logger configuration
type Config struct {
	Level       slog.Level
	Format      string // "json" or "text"
	Output      string // "stdout", "stderr", or file path
	ServiceName string
	Environment string
}

// DefaultConfig is the configuration used when none is supplied
var DefaultConfig = Config{
	Level:       LevelInfo,
	Format:      "json",
	Output:      "stdout",
	ServiceName: "image-analysis-api",
	Environment: "development",
}

// StructuredLogEntry is the on-wire shape of a JSON log line
type StructuredLogEntry struct {
	Timestamp   string         `json:"timestamp"`
	Level       string         `json:"level"`
	Message     string         `json:"message"`
	Service     string         `json:"service"`
	Environment string         `json:"environment"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Request     map[string]any `json:"request,omitempty"`
}

// Init initializes the global logger
func Init(config Config) error {
	var output *os.File
	var err error

	ServiceName = config.ServiceName
	Environment = config.Environment

	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		output, err = os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Output, err)
		}
	}

	var handler slog.Handler
	switch config.Format {
	case "json":
		handler = &StructuredJSONHandler{
			writer:      output,
			level:       config.Level,
			serviceName: config.ServiceName,
			environment: config.Environment,
		}
	default:
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{Level: config.Level})
	}

	Logger = slog.New(handler)
	return nil
}

// InitFromEnv initializes the logger from LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT
// and ENVIRONMENT environment variables
func InitFromEnv() error {
	config := DefaultConfig

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		config.Level = LevelDebug
	case "warn", "warning":
		config.Level = LevelWarn
	case "error":
		config.Level = LevelError
	case "info", "":
		config.Level = LevelInfo
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = format
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = output
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Environment = env
	}

	return Init(config)
}

// StructuredJSONHandler implements a custom JSON handler for the structured format
type StructuredJSONHandler struct {
	writer      io.Writer
	level       slog.Level
	serviceName string
	environment string
}

func (h *StructuredJSONHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *StructuredJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := StructuredLogEntry{
		Timestamp:   r.Time.Format(time.RFC3339),
		Level:       r.Level.String(),
		Message:     r.Message,
		Service:     h.serviceName,
		Environment: h.environment,
		Attributes:  make(map[string]any),
	}

	if ctx != nil {
		for _, key := range []contextKey{RequestIDKey, CorrelationIDKey, ComponentKey, StageKey} {
			if value := ctx.Value(key); value != nil {
				if entry.Request == nil {
					entry.Request = make(map[string]any)
				}
				entry.Request[string(key)] = value
			}
		}
	}

	r.Attrs(func(a slog.Attr) bool {
		entry.Attributes[a.Key] = a.Value.Any()
		return true
	})

	if len(entry.Attributes) == 0 {
		entry.Attributes = nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = h.writer.Write(data)
	return err
}

// WithComponent annotates the context with the component emitting log lines
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, ComponentKey, component)
}

// WithStage annotates the context with the current processing stage
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}

// WithRequestID annotates the context with a request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// fallback returns the global logger, initializing a default one if needed
func fallback() *slog.Logger {
	if Logger == nil {
		if err := Init(DefaultConfig); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: failed to initialize default logger: %v\n", err)
			return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelDebug}))
		}
	}
	return Logger
}

// Convenience functions for different log levels
func Debug(msg string, args ...any) {
	fallback().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	fallback().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	fallback().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	fallback().Error(msg, args...)
}

// Context-aware convenience functions
func DebugCtx(ctx context.Context, msg string, args ...any) {
	fallback().DebugContext(ctx, msg, args...)
}

func InfoCtx(ctx context.Context, msg string, args ...any) {
	fallback().InfoContext(ctx, msg, args...)
}

func WarnCtx(ctx context.Context, msg string, args ...any) {
	fallback().WarnContext(ctx, msg, args...)
}

func ErrorCtx(ctx context.Context, msg string, args ...any) {
	fallback().ErrorContext(ctx, msg, args...)
}
