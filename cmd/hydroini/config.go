package main

import "time"

// Config holds the CLI settings read from the environment.
type Config struct {
	LogLevel      string        `env:"HYDROINI_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"HYDROINI_LOG_FORMAT" envDefault:"text"`
	NoColor       bool          `env:"HYDROINI_NO_COLOR" envDefault:"false"`
	Lang          string        `env:"HYDROINI_LANG" envDefault:"en"`
	WatchDebounce time.Duration `env:"HYDROINI_WATCH_DEBOUNCE" envDefault:"200ms"`
	Jobs          int           `env:"HYDROINI_JOBS" envDefault:"0"`
}
