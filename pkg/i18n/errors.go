package i18n

import "errors"

var (
	ErrNilAdapter            = errors.New("i18n: adapter is nil")
	ErrFailedToParseYAML     = errors.New("i18n: failed to parse YAML content")
	ErrYAMLParsingCancelled  = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToReadDirectory = errors.New("i18n: failed to read translation directory")
	ErrFailedToReadFile      = errors.New("i18n: failed to read translation file")
	ErrNoTranslations        = errors.New("i18n: no translation files found")
	ErrLanguageNotSupported  = errors.New("i18n: language not supported")
)
