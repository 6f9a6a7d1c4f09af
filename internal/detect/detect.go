// Package detect wraps a language classifier with a heuristic that keeps
// short ASCII snippets from being misclassified.
package detect

import (
	"fmt"
	"strings"

	"github.com/hamzaqureshi/lipi/internal/metrics"
)

// Classifier is the external language-identification boundary.
type Classifier interface {
	Classify(text string) (code string, confidence float64)
}

// NewClassifier builds the configured classifier provider.
func NewClassifier(provider string) (Classifier, error) {
	switch provider {
	case "lingua":
		return NewLinguaClassifier(), nil
	case "whatlang":
		return NewWhatlangClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown detector provider: %s (supported: lingua, whatlang)", provider)
	}
}

const confidenceThreshold = 0.90

// Short ASCII text with any of these is almost certainly English even when
// the classifier is unsure.
var englishMarkers = []string{
	"the ", " and ", " how ", " you", " is ", " are ", " hello", " hi ",
}

type SafeDetector struct {
	classifier Classifier
}

func NewSafeDetector(classifier Classifier) *SafeDetector {
	return &SafeDetector{classifier: classifier}
}

// Detect returns the classifier's code, except that low-confidence results
// on mostly-ASCII text carrying English marker words are overridden to en.
// The override only ever redirects toward en; a confident non-English
// classification is always respected. Blank input yields "unknown".
func (d *SafeDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}

	code, confidence := d.classifier.Classify(text)
	if confidence >= confidenceThreshold {
		return code
	}

	if asciiFraction(text) > 0.9 {
		lower := strings.ToLower(text)
		for _, marker := range englishMarkers {
			if strings.Contains(lower, marker) {
				metrics.DetectionOverridesTotal.Inc()
				return "en"
			}
		}
	}

	return code
}

func asciiFraction(text string) float64 {
	ascii, total := 0, 0
	for _, r := range text {
		total++
		if r < 128 {
			ascii++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ascii) / float64(total)
}
