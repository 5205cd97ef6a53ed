package entities

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"helpinject/internal/domain"
)

// LanguageCode is an ISO 639-1 code of a language the frontend ships.
type LanguageCode string

const (
	Hungarian LanguageCode = "hu"
	English   LanguageCode = "en"
	German    LanguageCode = "de"
)

// SupportedLanguages lists the codes in the order the frontend registers them.
func SupportedLanguages() []LanguageCode {
	return []LanguageCode{Hungarian, English, German}
}

// ParseLanguage canonicalizes s ("EN", "en-GB", "de_AT") to a supported code.
func ParseLanguage(s string) (LanguageCode, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if raw == "" {
		return "", fmt.Errorf("parse language %q: %w", s, domain.ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, domain.ErrUnsupportedLanguage)
	}
	base, _ := tag.Base()
	code := LanguageCode(base.String())
	for _, supported := range SupportedLanguages() {
		if code == supported {
			return code, nil
		}
	}
	return "", fmt.Errorf("parse language %q: %w", s, domain.ErrUnsupportedLanguage)
}

func (c LanguageCode) String() string {
	return string(c)
}
