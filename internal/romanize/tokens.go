package romanize

import (
	"strings"
	"unicode"
)

// romanizeTokens is the shared dictionary-plus-char-map algorithm used by
// the Urdu and Hindi romanizers. Per token: exact word-map hit wins; else
// leading/trailing punctuation is stripped, the core is retried against the
// word map, and finally mapped character by character with an identity
// fallback. Tokens are rejoined with single spaces, so original whitespace
// width is not preserved.
func romanizeTokens(text string, words map[string]string, chars map[rune]string) string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if mapped, ok := words[w]; ok {
			out = append(out, mapped)
			continue
		}
		prefix, core, suffix := stripEdges(w)
		if core == "" {
			out = append(out, prefix+suffix)
			continue
		}
		if mapped, ok := words[core]; ok {
			out = append(out, prefix+mapped+suffix)
			continue
		}
		var b strings.Builder
		for _, r := range core {
			if mapped, ok := chars[r]; ok {
				b.WriteString(mapped)
			} else {
				b.WriteRune(r)
			}
		}
		out = append(out, prefix+b.String()+suffix)
	}
	return strings.Join(out, " ")
}

// stripEdges splits a token into leading punctuation, alphanumeric core,
// and trailing punctuation.
func stripEdges(w string) (prefix, core, suffix string) {
	runes := []rune(w)
	i, j := 0, len(runes)
	for i < j && !isAlnum(runes[i]) {
		i++
	}
	for j > i && !isAlnum(runes[j-1]) {
		j--
	}
	return string(runes[:i]), string(runes[i:j]), string(runes[j:])
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// mapRunes applies a character map over the whole string with identity
// fallback for unknown runes.
func mapRunes(text string, chars map[rune]string) string {
	var b strings.Builder
	for _, r := range text {
		if mapped, ok := chars[r]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
