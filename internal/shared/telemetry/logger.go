package telemetry

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = parseLevel(os.Getenv("LOG_LEVEL"))
	out    zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	logger = build(level, out)
)

func build(lvl zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.LevelKey = "level"
	encCfg.MessageKey = "msg"
	encCfg.CallerKey = ""
	encCfg.StacktraceKey = ""
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, lvl))
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel rebuilds the process logger at the given level.
func SetLevel(raw string) {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	level = parseLevel(raw)
	logger = build(level, out)
}

// SetOutput redirects log lines to w and returns a func restoring the previous sink.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = zapcore.AddSync(w)
	logger = build(level, out)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out = prev
		logger = build(level, out)
	}
}

// Logger returns the process logger for callers that want zap directly.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	Logger().Info(msg, toZap(fields)...)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	Logger().Warn(msg, toZap(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	Logger().Error(msg, toZap(fields)...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger().Sync()
}

func toZap(fields map[string]any) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zf = append(zf, zap.String(k, err.Error()))
			continue
		}
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
