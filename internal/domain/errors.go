package domain

import "errors"

// Domain errors.
var (
	ErrNoTranslations      = errors.New("no translations for language")
	ErrUnsupportedLanguage = errors.New("unsupported language code")
	ErrAlreadyApplied      = errors.New("translations already applied")
	ErrAnchorNotFound      = errors.New("insertion point not found")
	ErrFileNotFound        = errors.New("language file not found")
	ErrVerifyFailed        = errors.New("patched content failed verification")
	ErrInconsistentKeys    = errors.New("translation tables define different keys")
	ErrDuplicateKey        = errors.New("duplicate translation key")
)
