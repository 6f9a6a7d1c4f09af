package translate

import (
	"context"
	"fmt"

	"github.com/bregydoc/gtranslate"
)

// GoogleWebTranslator calls the public Google Translate web endpoint.
type GoogleWebTranslator struct{}

func NewGoogleWebTranslator() *GoogleWebTranslator {
	return &GoogleWebTranslator{}
}

// Translate translates text to target. The underlying client has no context
// support; cancellation falls to the caller's transport timeouts.
func (t *GoogleWebTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	if source == "" {
		source = "auto"
	}
	out, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
		From: source,
		To:   target,
	})
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	return out, nil
}
