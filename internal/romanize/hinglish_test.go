package romanize

import "testing"

func TestDevanagariToITRANS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"मैं", "maiM"},
		{"तुमसे", "tumase"},
		{"प्यार", "pyAra"},
		{"करता", "karatA"},
		{"हूँ", "hU.n"},
		{"मैं तुमसे प्यार करता हूँ", "maiM tumase pyAra karatA hU.n"},
		{"हिंदी", "hiMdI"},
		{"नमस्ते", "namaste"},
		// non-Devanagari passes through
		{"ok ठीक", "ok ThIka"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := devanagariToITRANS(tt.input); got != tt.want {
			t.Errorf("devanagariToITRANS(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDevanagariNuktaLetters(t *testing.T) {
	// NFC keeps the nukta letters decomposed, so the engine must accept
	// both the precomposed codepoint and base consonant + U+093C.
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precomposed za", "\u095B\u0930\u093E", "zarA"},
		{"decomposed za", "\u091C\u093C\u0930\u093E", "zarA"},
		{"precomposed qa", "\u0958", "qa"},
		{"decomposed qa", "\u0915\u093C", "qa"},
		{"decomposed fa", "\u092B\u093C", "fa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := devanagariToITRANS(tt.input); got != tt.want {
				t.Errorf("devanagariToITRANS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanHinglish(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"maiM tumase pyAra karatA hU.n", "main tumse pyaar karta hoon"},
		{"hiMdI", "hindi"},
		// anusvara is scrubbed before the word table runs, so the tumheM
		// entry never fires; the digraph pass already yields tumhen
		{"tumheM yAda karate", "tumhen yaad karte"},
		// vowel runs collapse: aa+ -> aa, ii+ -> i, uu+ -> u
		{"aaaa", "aa"},
		{"jiii", "ji"},
		{"juuu", "ju"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanHinglish(tt.input); got != tt.want {
			t.Errorf("CleanHinglish(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanHinglishCandrabindu(t *testing.T) {
	// Candrabindu words outside the substitution table must not keep a
	// literal dot in the output.
	tests := []struct{ input, want string }{
		{"हाँ", "han"},
		{"यहाँ", "yahan"},
		{"कहाँ", "kahan"},
		{"हूँ", "hoon"}, // word table still wins for hU.n
	}
	for _, tt := range tests {
		if got := CleanHinglish(devanagariToITRANS(tt.input)); got != tt.want {
			t.Errorf("CleanHinglish(devanagariToITRANS(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHindiEnginePath(t *testing.T) {
	// Engine output flows through CleanHinglish end to end.
	apply := hindiApply(&Capabilities{Devanagari: devanagariToITRANS})
	got := apply("मैं तुमसे प्यार करता हूँ")
	want := "main tumse pyaar karta hoon"
	if got != want {
		t.Errorf("hindi engine path = %q, want %q", got, want)
	}
}

func TestHindiFallbackWithoutEngine(t *testing.T) {
	apply := hindiApply(&Capabilities{})
	// word map covers the sentence directly
	got := apply("मैं तुम")
	if got != "main tum" {
		t.Errorf("hindi fallback = %q, want %q", got, "main tum")
	}
}

func TestHindiFallbackOnEnginePanic(t *testing.T) {
	apply := hindiApply(&Capabilities{
		Devanagari: func(string) string { panic("engine broke") },
	})
	if got := apply("तुम"); got != "tum" {
		t.Errorf("hindi panic fallback = %q, want tum", got)
	}
}

func TestRomanizeHindiDictionary(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"नमस्ते", "namaste"},
		// punctuation handling is shared with the Urdu algorithm
		{"नमस्ते!", "namaste!"},
		// decomposed nukta letter composed before the char map
		{"\u091C\u093C", "z"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := RomanizeHindi(tt.input); got != tt.want {
			t.Errorf("RomanizeHindi(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
