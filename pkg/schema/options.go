package schema

import (
	"log/slog"
	"time"
)

// DefaultDelimiter splits sequence fields of record types that declare no delimiter.
const DefaultDelimiter = ";"

// Observer is notified after every validation attempt.
type Observer interface {
	ObserveValidation(recordType string, violations int, elapsed time.Duration)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registration and subtype resolution events.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers an observer of validation outcomes.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observer = o
	}
}

func WithDefaultDelimiter(delim string) Option {
	return func(r *Registry) {
		if delim != "" {
			r.defaultDelimiter = delim
		}
	}
}
