package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "menutree.log"

// Options controls where and how much the application logs.
type Options struct {
	FilePath string
	// Level is one of debug, info, warn, error. Empty keeps logging silent
	// unless tracing is enabled.
	Level string
	Trace bool
}

var (
	mu           sync.Mutex
	logger       = zap.NewNop()
	traceEnabled bool
	logPath      = defaultLogFile
)

// Configure replaces the shared logger. Empty paths fall back to the default
// file; directories are created automatically when missing.
func Configure(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	path := strings.TrimSpace(opts.FilePath)
	if path == "" {
		path = defaultLogFile
	}

	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	traceEnabled = opts.Trace
	logPath = path
	if strings.TrimSpace(opts.Level) == "" && !opts.Trace {
		logger = zap.NewNop()
		return nil
	}
	if opts.Trace {
		level = zapcore.DebugLevel
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger = zap.NewNop()
		return fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	built, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
		return fmt.Errorf("initialize logger: %w", err)
	}
	logger = built
	return nil
}

// ParseLevel maps a level name onto zap. Empty selects info.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Path returns the configured log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Error logs err; nil is ignored.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error("error", zap.Error(err))
}

// Info logs an informational message.
func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	fields := make([]zap.Field, 0, 1)
	if len(payload) > 0 {
		fields = append(fields, zap.Any("payload", payload))
	}
	Logger().Debug(event, fields...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger().Sync()
}
