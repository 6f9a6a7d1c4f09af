package detect

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// LinguaClassifier backs the detector with the lingua n-gram models. The
// detector is built once; construction is the expensive part.
type LinguaClassifier struct {
	detector lingua.LanguageDetector
}

func NewLinguaClassifier() *LinguaClassifier {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &LinguaClassifier{detector: detector}
}

func (c *LinguaClassifier) Classify(text string) (string, float64) {
	values := c.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return "unknown", 0
	}
	top := values[0]
	code := strings.ToLower(top.Language().IsoCode639_1().String())
	return code, top.Value()
}
