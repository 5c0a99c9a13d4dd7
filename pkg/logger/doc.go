// Package logger builds the slog loggers used by the hydroini command and
// packages.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level and static attributes. Records logged with a
// context also carry the file and section stored in it by ContextWithFile and
// ContextWithSection:
//
//	ctx = logger.ContextWithFile(ctx, "structures.ini")
//	log.DebugContext(ctx, "file validated") // ... file=structures.ini
//
// ParseLevel and ParseFormat turn configuration strings into options input.
//
// Attribute helpers in attr.go keep key names consistent:
//
//	log.Warn("unrecognized subtype",
//		logger.Section("Forcing"),
//		logger.RecordType("Forcing"),
//		logger.Field("function"),
//	)
//
// # Usage
//
//	import "github.com/dmitrymomot/hydroini/pkg/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithCommand("validate"),
//	)
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// is safe when err is nil.
package logger
