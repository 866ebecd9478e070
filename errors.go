package sl10n

import "errors"

var (
	ErrDuplicateKey      = errors.New("duplicate message key")
	ErrEmptyTranslations = errors.New("empty translations")
)
