package gotrans

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the English display name for a language code.
// Falls back to the code itself if it cannot be parsed or has no name,
// which covers backend-specific codes such as "auto".
func LanguageName(langCode string) string {
	code := NormalizeLangCode(langCode)
	if code == "" {
		return langCode
	}

	tag, err := language.Parse(code)
	if err != nil {
		return langCode
	}

	name := display.English.Tags().Name(tag)
	if name == "" {
		return langCode
	}
	return name
}

// LanguagePair renders a source/target pair for display, e.g. "English → Chinese".
func LanguagePair(sourceLang, targetLang string) string {
	return LanguageName(sourceLang) + " → " + LanguageName(targetLang)
}

// NormalizeLangCode converts a locale code to BCP 47 separators (e.g., "zh_CN" → "zh-CN").
// It is only used for display; backends always receive codes verbatim.
func NormalizeLangCode(langCode string) string {
	return strings.ReplaceAll(strings.TrimSpace(langCode), "_", "-")
}
