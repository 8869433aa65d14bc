package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// Set via OMAP_DEBUG in the environment
	Debug bool
	// Set via OMAP_BENCH_LIMIT in the environment
	Limit int
	// Set via OMAP_BENCH_DURATION in the environment
	Duration time.Duration
)

const (
	defaultLimit    = 10_000_000
	defaultDuration = 2 * time.Second
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"OMAP_DEBUG":          {"OMAP_DEBUG", Debug, "Show debug logging, one line per measurement (e.g. OMAP_DEBUG=1)"},
		"OMAP_BENCH_LIMIT":    {"OMAP_BENCH_LIMIT", Limit, "Capacity growth runs stop below (default 10000000)"},
		"OMAP_BENCH_DURATION": {"OMAP_BENCH_DURATION", Duration, "Time each map is exercised by contains (default 2s)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// clean returns the variable with surrounding quotes and spaces removed
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// LoadConfig reads the environment into the package variables. Bad
// values are logged and replaced by their defaults.
func LoadConfig() {
	Debug = false
	if s := clean("OMAP_DEBUG"); s != "" {
		d, err := strconv.ParseBool(s)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Limit = defaultLimit
	if s := clean("OMAP_BENCH_LIMIT"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			slog.Error("invalid setting, using default", "OMAP_BENCH_LIMIT", s, "default", defaultLimit)
		} else {
			Limit = n
		}
	}

	Duration = defaultDuration
	if s := clean("OMAP_BENCH_DURATION"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			slog.Error("invalid setting, using default", "OMAP_BENCH_DURATION", s, "default", defaultDuration)
		} else {
			Duration = d
		}
	}
}
