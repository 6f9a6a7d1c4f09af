package detect

import "github.com/abadojack/whatlanggo"

// WhatlangClassifier is the lighter-weight alternative provider. Trigram
// based, no model preload, noticeably less accurate on short text.
type WhatlangClassifier struct{}

func NewWhatlangClassifier() *WhatlangClassifier {
	return &WhatlangClassifier{}
}

func (c *WhatlangClassifier) Classify(text string) (string, float64) {
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		code = whatlanggo.LangToString(info.Lang)
	}
	return code, info.Confidence
}
