// Package config loads typed settings from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct annotated with `env` tags.
//
// Each configuration type is parsed once and cached for the lifetime of the
// process. ForceReload and ResetCache bypass the cache, mostly for tests.
//
// # Usage
//
//	type Settings struct {
//		LogLevel  string `env:"HYDROINI_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"HYDROINI_LOG_FORMAT" envDefault:"text"`
//		NoColor   bool   `env:"HYDROINI_NO_COLOR"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// Additional .env files can be read before loading:
//
//	if err := config.LoadEnv("model/.env"); err != nil {
//		return err
//	}
//
// # Concurrency
//
// Load is safe for concurrent use; parsing of one type happens at most once
// at a time.
package config
