package romanize

import (
	"regexp"
	"strings"
)

// CleanHinglish scrubs academic ITRANS output into casual WhatsApp-style
// Hinglish: diacritic digraphs become plain letters, a fixed table swaps
// stiff romanizations for common spellings, everything is lowercased, and
// runs of doubled vowels collapse.

// Applied in order, before the word table, on the raw engine output.
var hinglishDigraphs = []struct{ from, to string }{
	{".N", "n"}, {"M", "n"}, {"~N", "n"},
	{".a", "a"}, {".i", "i"}, {".u", "u"}, {".r", "r"},
}

var hinglishWords = []struct{ from, to string }{
	{"maiM", "main"},
	{"tumase", "tumse"},
	{"pyAra", "pyaar"},
	{"karatA", "karta"},
	{"hU.n", "hoon"},
	{"hU.N", "hoon"},
	{"tumheM", "tumhe"},
	{"yAda", "yaad"},
	{"mujhe", "mujhe"},
	{"pUrA", "poora"},
	{"yakIna", "yakeen"},
	{"tuma", "tum"},
	{"aisA", "aisa"},
	{"karate", "karte"},
}

type wordSub struct {
	re *regexp.Regexp
	to string
}

var hinglishWordSubs = func() []wordSub {
	subs := make([]wordSub, len(hinglishWords))
	for i, w := range hinglishWords {
		subs[i] = wordSub{
			re: regexp.MustCompile(`\b` + regexp.QuoteMeta(w.from) + `\b`),
			to: w.to,
		}
	}
	return subs
}()

var (
	collapseA = regexp.MustCompile(`aa+`)
	collapseI = regexp.MustCompile(`ii+`)
	collapseU = regexp.MustCompile(`uu+`)
)

func CleanHinglish(text string) string {
	for _, d := range hinglishDigraphs {
		text = strings.ReplaceAll(text, d.from, d.to)
	}
	for _, s := range hinglishWordSubs {
		text = s.re.ReplaceAllString(text, s.to)
	}
	// Candrabindu marks left over after the word pass (hA.n, yahA.n) lose
	// their dot here. Must run after the word pass or hU.n never reaches it.
	text = strings.ReplaceAll(text, ".n", "n")
	text = strings.ToLower(text)
	text = collapseA.ReplaceAllString(text, "aa")
	text = collapseI.ReplaceAllString(text, "i")
	text = collapseU.ReplaceAllString(text, "u")
	return strings.TrimSpace(text)
}
