package romanize

import "testing"

func TestRomanizeUrdu(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// all dictionary words except سے, which falls to the char map
		{"میں تم سے پیار کرتا ہوں", "main tum se pyaar karta hoon"},
		// punctuation is stripped, mapped, and reattached
		{"سلام!", "salaam!"},
		{"\"سلام\"", "\"salaam\""},
		// whitespace runs collapse to single spaces
		{"میں   تم", "main tum"},
		{"", ""},
		// pure punctuation token survives untouched
		{"؟!", "؟!"},
	}
	for _, tt := range tests {
		if got := RomanizeUrdu(tt.input); got != tt.want {
			t.Errorf("RomanizeUrdu(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRomanizeUrduUnknownCharsPassThrough(t *testing.T) {
	// Latin text has no map entries anywhere; identity fallback keeps it whole.
	if got := RomanizeUrdu("hello world"); got != "hello world" {
		t.Errorf("RomanizeUrdu(latin) = %q", got)
	}
}

func TestRomanizeArabic(t *testing.T) {
	got := RomanizeArabic("سلام")
	if got != "slam" {
		t.Errorf("RomanizeArabic(سلام) = %q, want slam", got)
	}

	// Stable under repeated application: ASCII output has no mappable runes.
	if again := RomanizeArabic(got); again != got {
		t.Errorf("RomanizeArabic not idempotent: %q -> %q", got, again)
	}
}

func TestRomanizeArabicUnknownPassThrough(t *testing.T) {
	if got := RomanizeArabic("abc 123"); got != "abc 123" {
		t.Errorf("RomanizeArabic(ascii) = %q", got)
	}
}
