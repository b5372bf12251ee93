// Package logger holds the process-wide zap logger and the child loggers
// derived from it for requests and assessment runs.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "meansassess"

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

// Init installs the logger for env. "production" writes JSON with ISO-8601
// timestamps, "test" discards everything, and any other value writes
// coloured console output at debug level.
func Init(env string) {
	Replace(build(env))
}

func build(env string) *zap.Logger {
	var cfg zap.Config
	switch env {
	case "test":
		return zap.NewNop()
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.InitialFields = map[string]interface{}{"service": serviceName}

	base, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Replace swaps the global logger and returns a func that restores the
// previous one.
func Replace(l *zap.Logger) (restore func()) {
	mu.Lock()
	prev := sugar
	sugar = l.Sugar()
	mu.Unlock()

	return func() {
		mu.Lock()
		sugar = prev
		mu.Unlock()
	}
}

// Get returns the global logger, installing a development one on first use.
func Get() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		return s
	}

	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		sugar = build("development").Sugar()
	}
	return sugar
}

// ForAssessment tags entries with the assessment being worked on.
func ForAssessment(id string) *zap.SugaredLogger {
	return Get().With("assessment_id", id)
}

// ForRequest tags entries with the request they belong to.
func ForRequest(requestID, method, path string) *zap.SugaredLogger {
	return Get().With("request_id", requestID, "method", method, "path", path)
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		_ = s.Sync()
	}
}
