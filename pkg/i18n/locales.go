package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewValidationTranslator creates a translator for the embedded violation
// message translations.
func NewValidationTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), locales, "locales"), options...)
}
