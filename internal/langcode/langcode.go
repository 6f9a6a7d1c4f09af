// Package langcode maps human-typed language names and short codes to the
// canonical codes the translation service expects.
package langcode

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultCode is used when the caller supplies no target language at all.
const DefaultCode = "en"

// langMap accepts both full names and short codes. Values are the exact
// codes the translation backend expects, including region-qualified forms.
var langMap = map[string]string{
	"english": "en", "en": "en",
	"urdu": "ur", "ur": "ur",
	"hindi": "hi", "hi": "hi",
	"japanese": "ja", "ja": "ja",
	"korean": "ko", "ko": "ko",
	"spanish": "es", "es": "es",
	"french": "fr", "fr": "fr",
	"russian": "ru", "ru": "ru",
	"arabic": "ar", "ar": "ar",
	"persian": "fa", "fa": "fa", "farsi": "fa",
	"italian": "it", "it": "it",
	"chinese": "zh-CN", "zh": "zh-CN", "zh-cn": "zh-CN", "zh-tw": "zh-TW",
	"greek": "el", "el": "el",
	"latin": "la", "la": "la",
	// "cyrillic" is a script, not a language; ru is a practical proxy.
	"cyrillic": "ru", "sr": "sr",
}

// Normalize maps input to a canonical language code. Blank input defaults to
// en. Inputs not in the table are returned lowercased and otherwise
// untouched; callers tolerate unrecognized codes downstream.
func Normalize(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return DefaultCode
	}
	if code, ok := langMap[key]; ok {
		return code
	}
	return key
}

// DisplayName returns the English display name for a language code, or the
// code itself when it cannot be parsed as a language tag.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}

// Supported lists the language names accepted by Normalize, sorted, with
// bare short codes filtered out.
func Supported() []string {
	names := lo.Filter(lo.Keys(langMap), func(k string, _ int) bool {
		return len(k) > 3
	})
	sort.Strings(names)
	return names
}
