// Package translate converts text between the detected language and English.
// Failures are non-fatal by contract: callers fall back to the untranslated
// text.
package translate

import "context"

// Auto is the source tag for automatic source-language detection.
const Auto = "auto"

// Translator converts text from src to dst. src may be Auto. An error means
// the caller must use the original text and continue; no call site may treat
// a translation error as fatal.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// Noop is a translator that returns its input unchanged. Used when
// translation is disabled and in tests.
type Noop struct{}

// NewNoop returns a translator that performs no translation.
func NewNoop() *Noop {
	return &Noop{}
}

// Translate returns text unchanged.
func (n *Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
