package logger

import (
	"context"
	"log/slog"
)

type scopeKey struct{}

// scope is the part of a model a goroutine is working on.
type scope struct {
	file    string
	section string
}

// ContextWithFile records the file being processed. Loggers from New add it
// under the key "file" to every record logged with ctx.
func ContextWithFile(ctx context.Context, path string) context.Context {
	s := scopeFrom(ctx)
	s.file = path
	s.section = ""
	return context.WithValue(ctx, scopeKey{}, s)
}

// ContextWithSection narrows the scope of ctx to one section header of the
// current file. It is logged under the key "section".
func ContextWithSection(ctx context.Context, header string) context.Context {
	s := scopeFrom(ctx)
	s.section = header
	return context.WithValue(ctx, scopeKey{}, s)
}

// FileFromContext returns the file recorded by ContextWithFile.
func FileFromContext(ctx context.Context) (string, bool) {
	s := scopeFrom(ctx)
	return s.file, s.file != ""
}

func scopeFrom(ctx context.Context) scope {
	if ctx == nil {
		return scope{}
	}
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// scopeHandler adds the scope stored in the context of each record.
type scopeHandler struct {
	next slog.Handler
}

func (h scopeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h scopeHandler) Handle(ctx context.Context, rec slog.Record) error {
	s := scopeFrom(ctx)
	if s.file != "" {
		rec.AddAttrs(File(s.file))
	}
	if s.section != "" {
		rec.AddAttrs(Section(s.section))
	}
	return h.next.Handle(ctx, rec)
}

func (h scopeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return scopeHandler{next: h.next.WithAttrs(attrs)}
}

func (h scopeHandler) WithGroup(name string) slog.Handler {
	return scopeHandler{next: h.next.WithGroup(name)}
}
