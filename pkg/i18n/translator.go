package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

// DefaultLanguage is the language of the built-in violation messages.
const DefaultLanguage = "en"

// Translator looks up translations loaded from an adapter.
// It is safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// NewTranslator loads the translations of adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" || trans == nil {
			return nil, fmt.Errorf("i18n: invalid translations for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the sorted language codes with translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// Supports reports whether lang has translations.
func (t *Translator) Supports(lang string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.translations[lang]
	return ok
}

// lookup traverses the nested mapping of lang along the dot separated key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, isString := val.(string)
			return s, isString
		}
		next, isMap := val.(map[string]any)
		if !isMap {
			return "", false
		}
		current = next
	}
	return "", false
}

// HasTranslation reports whether key has a string translation in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown placeholders are kept.
func substitute(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang. Args are name, value pairs for the placeholders;
// an odd trailing argument is ignored. A missing translation falls back to
// the default language and then, if enabled, to the key itself.
//
//	// "validation.required": "%{field} is verplicht"
//	tr.T("nl", "validation.required", "field", "crestLevel")
//	// crestLevel is verplicht
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if s, ok := t.translate(lang, key); ok {
		return substitute(s, params)
	}
	if t.fallbackToKey {
		return substitute(key, params)
	}
	return ""
}

func (t *Translator) translate(lang, key string) (string, bool) {
	if s, ok := t.lookup(lang, key); ok {
		return s, true
	}
	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if lang != t.defaultLang {
		return t.lookup(t.defaultLang, key)
	}
	return "", false
}

// Violation renders v in lang. Without a translation for its key in lang the
// violation's own message is returned.
func (t *Translator) Violation(lang string, v validator.Violation) string {
	tmpl, ok := t.lookup(lang, v.TranslationKey)
	if !ok || v.TranslationKey == "" {
		if t.logMissing {
			t.logger.Warn("violation not translated", slog.String("lang", lang), slog.String("key", v.TranslationKey))
		}
		return v.Message
	}

	params := make(map[string]string, len(v.TranslationValues))
	for name, val := range v.TranslationValues {
		params[name] = t.formatValue(lang, name, val)
	}
	return substitute(tmpl, params)
}

// Violations renders every violation in lang.
func (t *Translator) Violations(lang string, vs validator.Violations) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = t.Violation(lang, v)
	}
	return out
}

func (t *Translator) formatValue(lang, name string, val any) string {
	switch v := val.(type) {
	case []string:
		or, ok := t.lookup(lang, "validation.words.or")
		if !ok {
			or = "or"
		}
		return strings.Join(v, " "+or+" ")
	case string:
		if name == "operator" {
			if s, ok := t.lookup(lang, "validation.operators."+v); ok {
				return s
			}
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
