package romanize

import "strings"

// Devanagari to ITRANS-style romanization. This is the "academic" engine
// feeding CleanHinglish; the inherent schwa is written out ("karatA"), long
// vowels are uppercase, anusvara is M and candrabindu is .n, which is
// exactly the shape the cleanup pass expects.

const virama = '्'

const nukta = '\u093C'

// Unicode composition exclusions keep the Devanagari nukta letters
// decomposed under NFC, so translator output arrives as base consonant
// plus U+093C. Compose them up front so one set of map keys covers both
// forms.
var nuktaComposer = strings.NewReplacer(
	"\u0915\u093C", "\u0958", // qa
	"\u0916\u093C", "\u0959", // khha
	"\u0917\u093C", "\u095A", // ghha
	"\u091C\u093C", "\u095B", // za
	"\u0921\u093C", "\u095C", // dddha
	"\u0922\u093C", "\u095D", // rha
	"\u092B\u093C", "\u095E", // fa
)

var itransVowels = map[rune]string{
	'अ': "a", 'आ': "A", 'इ': "i", 'ई': "I",
	'उ': "u", 'ऊ': "U", 'ऋ': ".r",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
	'ॐ': "OM",
}

var itransMatras = map[rune]string{
	'ा': "A", 'ि': "i", 'ी': "I", 'ु': "u", 'ू': "U", 'ृ': ".r",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॉ': "o", 'ॆ': "e", 'ॊ': "o",
}

var itransConsonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "~N",
	'च': "ch", 'छ': "Ch", 'ज': "j", 'झ': "jh", 'ञ': "~n",
	'ट': "T", 'ठ': "Th", 'ड': "D", 'ढ': "Dh", 'ण': "N",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "sh", 'ष': "Sh", 'स': "s", 'ह': "h",
	// nukta letters, precomposed U+0958..U+095E
	'\u0958': "q", '\u0959': "Kh", '\u095A': "G", '\u095B': "z",
	'\u095C': ".D", '\u095D': ".Dh", '\u095E': "f",
}

var itransSigns = map[rune]string{
	'ं': "M", 'ँ': ".n", 'ः': "H", '।': ".", '॥': "..",
}

// devanagariToITRANS converts Devanagari text to ITRANS-style romanization.
// Consonants carry an inherent "a" unless followed by a vowel sign or
// virama. Non-Devanagari runes pass through unchanged.
func devanagariToITRANS(text string) string {
	var b strings.Builder
	pending := "" // consonant awaiting its vowel

	flush := func(inherent bool) {
		if pending == "" {
			return
		}
		b.WriteString(pending)
		if inherent {
			b.WriteByte('a')
		}
		pending = ""
	}

	for _, r := range nuktaComposer.Replace(text) {
		if c, ok := itransConsonants[r]; ok {
			flush(true)
			pending = c
			continue
		}
		if m, ok := itransMatras[r]; ok {
			b.WriteString(pending)
			pending = ""
			b.WriteString(m)
			continue
		}
		if r == virama {
			flush(false)
			continue
		}
		if r == nukta { // stray nukta on a base the composer does not know
			continue
		}
		if v, ok := itransVowels[r]; ok {
			flush(true)
			b.WriteString(v)
			continue
		}
		if s, ok := itransSigns[r]; ok {
			flush(true)
			b.WriteString(s)
			continue
		}
		flush(true)
		b.WriteRune(r)
	}
	flush(true)

	return b.String()
}
