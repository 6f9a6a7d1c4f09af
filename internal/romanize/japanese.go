package romanize

import "github.com/gojp/kana"

// romanizeJapanese converts hiragana and katakana to Hepburn romaji. Kanji
// passes through untouched; the translation target is usually kana-heavy
// enough for a readable result.
func romanizeJapanese(text string) string {
	return kana.KanaToRomaji(text)
}
