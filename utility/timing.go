package utility

import (
	"time"

	"github.com/kbukum/streamkit/logger"
)

// Timed runs fn and logs its execution time under the given name.
// A nil log falls back to the global logger.
func Timed(log *logger.Logger, name string, fn func()) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	start := time.Now()
	fn()
	log.Info("execution time", map[string]any{
		"name":    name,
		"elapsed": time.Since(start).String(),
	})
}

// TimedResult runs fn, logs its execution time under the given name,
// and returns fn's result.
func TimedResult[T any](log *logger.Logger, name string, fn func() T) T {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	start := time.Now()
	out := fn()
	log.Info("execution time", map[string]any{
		"name":    name,
		"elapsed": time.Since(start).String(),
	})
	return out
}
