package detect

import "testing"

type stubClassifier struct {
	code       string
	confidence float64
}

func (s stubClassifier) Classify(string) (string, float64) {
	return s.code, s.confidence
}

func TestDetectBlankInput(t *testing.T) {
	d := NewSafeDetector(stubClassifier{"en", 0.99})
	if got := d.Detect(""); got != "unknown" {
		t.Errorf("Detect(\"\") = %q, want unknown", got)
	}
	if got := d.Detect("   \n\t"); got != "unknown" {
		t.Errorf("Detect(whitespace) = %q, want unknown", got)
	}
}

func TestDetectHighConfidenceNeverOverridden(t *testing.T) {
	// Confident non-English classification wins even on pure ASCII with
	// English marker words.
	d := NewSafeDetector(stubClassifier{"fr", 0.95})
	if got := d.Detect("the rendezvous is here and how are you"); got != "fr" {
		t.Errorf("Detect(high-confidence fr) = %q, want fr", got)
	}
}

func TestDetectLowConfidenceASCIIOverride(t *testing.T) {
	d := NewSafeDetector(stubClassifier{"nl", 0.4})
	if got := d.Detect("oh hi there, you ok?"); got != "en" {
		t.Errorf("Detect(low-confidence ascii) = %q, want en", got)
	}
}

func TestDetectLowConfidenceNoMarkers(t *testing.T) {
	// ASCII but no English marker substrings: keep the classifier's answer.
	d := NewSafeDetector(stubClassifier{"nl", 0.4})
	if got := d.Detect("zxcv qwer asdf"); got != "nl" {
		t.Errorf("Detect(no markers) = %q, want nl", got)
	}
}

func TestDetectLowConfidenceNonASCII(t *testing.T) {
	// Mostly non-ASCII text never triggers the English override.
	d := NewSafeDetector(stubClassifier{"ur", 0.3})
	if got := d.Detect("میں تم سے پیار کرتا ہوں"); got != "ur" {
		t.Errorf("Detect(non-ascii low confidence) = %q, want ur", got)
	}
}

func TestNewClassifier(t *testing.T) {
	if _, err := NewClassifier("whatlang"); err != nil {
		t.Fatalf("NewClassifier(whatlang) error: %v", err)
	}
	if _, err := NewClassifier("nope"); err == nil {
		t.Fatal("NewClassifier(nope) expected error")
	}
}

func TestWhatlangClassifier(t *testing.T) {
	c := NewWhatlangClassifier()
	code, confidence := c.Classify("Это предложение написано по-русски и достаточно длинное.")
	if code != "ru" {
		t.Errorf("whatlang code = %q, want ru", code)
	}
	if confidence <= 0 {
		t.Errorf("whatlang confidence = %v, want > 0", confidence)
	}
}
