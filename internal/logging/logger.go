// Package logging provides categorized structured logging for the dialogue
// core. Each subsystem logs under its own named zap logger; until Initialize
// is called every category is a silent no-op, which keeps tests and the TUI
// quiet by default.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names one logging subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, self-checks
	CategoryDialogue Category = "dialogue" // Dispatch pipeline
	CategoryEngine   Category = "engine"   // Entity state mutations
	CategoryReport   Category = "report"   // Self-report generation
	CategoryConfig   Category = "config"   // Config load and reload
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.SugaredLogger)
)

// Initialize installs the process logger. verbose enables debug level with a
// development encoder; otherwise the production config is used. Safe to call
// more than once; later calls replace the root and drop cached categories.
func Initialize(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logging: build logger: %w", err)
	}
	install(logger)
	return nil
}

// InitializeNop restores the silent default. Tests use this to isolate
// output.
func InitializeNop() {
	install(zap.NewNop())
}

func install(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = logger
	loggers = make(map[Category]*zap.SugaredLogger)
}

// Get returns the sugared logger for a category, creating it on first use.
func Get(cat Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	l := root.Named(string(cat)).Sugar()
	loggers[cat] = l
	return l
}

// Sync flushes buffered log entries. Called once at process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
