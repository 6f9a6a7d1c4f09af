package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hamzaqureshi/lipi/internal/detect"
	"github.com/hamzaqureshi/lipi/internal/romanize"
	"github.com/hamzaqureshi/lipi/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	code       string
	confidence float64
}

func (s stubClassifier) Classify(string) (string, float64) {
	return s.code, s.confidence
}

type echoTranslator struct{}

func (echoTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string, string) (string, error) {
	return "", errors.New("service unavailable")
}

type fixedTranslator struct{ out string }

func (t fixedTranslator) Translate(context.Context, string, string, string) (string, error) {
	return t.out, nil
}

func newPipeline(t *testing.T, classifier detect.Classifier, translator translate.Translator) *Pipeline {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(detect.NewSafeDetector(classifier), translator, romanize.New(romanize.Probe(log)), log)
}

func TestRunLatinTarget(t *testing.T) {
	p := newPipeline(t, stubClassifier{"fr", 0.99}, echoTranslator{})

	result := p.Run(context.Background(), "bonjour", "english")

	require.Equal(t, "fr", result.SourceLang)
	require.Equal(t, "en", result.TargetLang)
	require.Equal(t, "bonjour", result.Translated)
	// Latin-script target: romanized equals translated.
	require.Equal(t, "bonjour", result.Romanized)
}

func TestRunTranslationErrorBecomesDiagnostic(t *testing.T) {
	p := newPipeline(t, stubClassifier{"en", 0.99}, failingTranslator{})

	result := p.Run(context.Background(), "hello", "urdu")

	assert.Equal(t, "en", result.SourceLang)
	assert.True(t, strings.HasPrefix(result.Translated, "(translation error:"), "got %q", result.Translated)
	assert.Contains(t, result.Translated, "service unavailable")
}

func TestRunRomanizesNonLatinTarget(t *testing.T) {
	p := newPipeline(t, stubClassifier{"en", 0.99}, fixedTranslator{out: "سلام"})

	result := p.Run(context.Background(), "hello", "urdu")

	assert.Equal(t, "ur", result.TargetLang)
	assert.Equal(t, "سلام", result.Translated)
	assert.Equal(t, "salaam", result.Romanized)
}

func TestRunUnknownTargetPassesThrough(t *testing.T) {
	p := newPipeline(t, stubClassifier{"en", 0.99}, echoTranslator{})

	result := p.Run(context.Background(), "whatever", "unknownxyz")

	assert.Equal(t, "unknownxyz", result.TargetLang)
	assert.Equal(t, "whatever", result.Romanized)
}
