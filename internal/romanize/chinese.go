package romanize

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var pinyinArgs = pinyin.NewArgs() // Normal style, no tone marks

// romanizeChinese renders Han characters as space-separated pinyin
// syllables. Runs of non-Han characters are kept together as single tokens.
func romanizeChinese(text string) string {
	var parts []string
	var other strings.Builder

	flush := func() {
		if other.Len() > 0 {
			parts = append(parts, other.String())
			other.Reset()
		}
	}

	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			flush()
			if py := pinyin.SinglePinyin(r, pinyinArgs); len(py) > 0 {
				parts = append(parts, py[0])
			} else {
				parts = append(parts, string(r))
			}
		} else {
			other.WriteRune(r)
		}
	}
	flush()

	return strings.Join(parts, " ")
}
