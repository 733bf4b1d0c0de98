package gotrans

import "context"

// Translation is the normalized result every backend produces.
//
// Paraphrase and Phonetic are nil when the backend supplies nothing; a
// non-nil pointer to "" means the backend returned an empty value.
type Translation struct {
	Text       string   `json:"text"`                 // Original input, unmodified
	Engine     string   `json:"engine"`               // Identifier of the producing backend
	Paraphrase *string  `json:"paraphrase,omitempty"` // Short best-guess translation
	Phonetic   *string  `json:"phonetic,omitempty"`   // Pronunciation guide
	Explains   []string `json:"explains"`             // Definitions in provider order
}

// Backend is the interface implemented by every translation engine.
//
// Implementations hold only immutable configuration and are safe to reuse
// across calls and goroutines. Translate performs exactly one HTTP request
// and never retries.
type Backend interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*Translation, error)
	Name() string
}

// Request describes one translation dispatched through a Translator.
type Request struct {
	Engine     string // Registry name of the backend (case-sensitive)
	Text       string // Text to translate, passed through verbatim
	SourceLang string // Backend-defined source language code
	TargetLang string // Backend-defined target language code
}

// StringPtr returns a pointer to s. Backends use it to mark a field present.
func StringPtr(s string) *string {
	return &s
}
