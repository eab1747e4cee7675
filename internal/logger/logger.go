// Package logger provides the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger once per process. "production" logs JSON at
// info level, "test" discards everything, anything else gets the development
// console encoder.
func Init(env string) {
	once.Do(func() {
		sugar = build(env)
	})
}

func build(env string) *zap.SugaredLogger {
	var cfg zap.Config
	switch env {
	case "test":
		return zap.NewNop().Sugar()
	case "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]interface{}{"service": "wealthtrack"}

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar()
}

// Get returns the global logger, initializing a development logger on first use.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Named returns a child logger tagged with component.
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
