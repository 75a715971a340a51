// Package envconfig reads IMTERFACE_* environment variables.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel returns the log level.
// Configurable via IMTERFACE_DEBUG: 0/false = INFO (default), 1/true = DEBUG, 2 = TRACE.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("IMTERFACE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

var (
	// NumWorkers bounds concurrent jobs in a batch. 0 means one per CPU.
	NumWorkers = Uint("IMTERFACE_NUM_WORKERS", 0)
	// Sequential runs batch jobs one after another on the caller's goroutine.
	Sequential = Bool("IMTERFACE_SEQUENTIAL")
)

// Var returns an environment variable stripped of surrounding spaces and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable. Unparsable values read as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable defaulting to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a reader for an unsigned variable with a default.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"IMTERFACE_DEBUG":       {"IMTERFACE_DEBUG", LogLevel(), "Show additional debug information (e.g. IMTERFACE_DEBUG=1, 2 for trace)"},
		"IMTERFACE_NUM_WORKERS": {"IMTERFACE_NUM_WORKERS", NumWorkers(), "Maximum concurrent jobs in a batch (default: one per CPU)"},
		"IMTERFACE_SEQUENTIAL":  {"IMTERFACE_SEQUENTIAL", Sequential(), "Run batch jobs sequentially"},
	}
}

// Values returns every variable's value formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
