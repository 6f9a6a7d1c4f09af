// Package romanize renders translated text into readable Latin script.
// Each script family has its own strategy: dictionary plus character-map
// fallback for Urdu and Hindi, a bare character map for Arabic and Persian,
// and engine adapters for Japanese, Chinese, Korean, Cyrillic, and Greek
// that degrade to pass-through when the engine is missing or misbehaves.
package romanize

import (
	"strings"

	"github.com/hamzaqureshi/lipi/internal/metrics"
)

// rule pairs a predicate over the lowercased target code with the romanizer
// to apply. Rules are evaluated strictly in order: prefix rules first, then
// exact and set-membership rules, so future overlapping codes stay
// unambiguous.
type rule struct {
	script string
	match  func(code string) bool
	apply  func(text string) string
}

type Romanizer struct {
	rules []rule
}

// New builds a Romanizer over the probed capability table. Unavailable
// engines are wired as pass-through adapters.
func New(caps *Capabilities) *Romanizer {
	latin := codeSet("en", "fr", "es", "it", "la", "de", "pt",
		"spanish", "french", "italian", "latin")

	return &Romanizer{rules: []rule{
		{"japanese", hasPrefix("ja"), adapter(caps.Japanese)},
		{"chinese", hasPrefix("zh"), adapter(caps.Chinese)},
		{"korean", hasPrefix("ko"), adapter(caps.Korean)},
		{"urdu", equalsAny("ur", "urdu"), RomanizeUrdu},
		{"hindi", equalsAny("hi", "hindi"), hindiApply(caps)},
		{"arabic", codeSet("ar", "arabic", "fa", "persian", "farsi"), RomanizeArabic},
		{"cyrillic", codeSet("ru", "sr", "cyrillic", "russian"), adapter(caps.Cyrillic)},
		{"greek", codeSet("el", "greek"), adapter(caps.Greek)},
		{"latin", latin, passthrough},
	}}
}

// Romanize returns a Latin-script rendering of text for the given target
// code. Unrecognized codes and empty text pass through unchanged; this
// function never fails.
func (r *Romanizer) Romanize(text, targetCode string) string {
	if text == "" {
		return text
	}
	code := strings.ToLower(targetCode)
	for _, rl := range r.rules {
		if rl.match(code) {
			metrics.RomanizationsTotal.WithLabelValues(rl.script).Inc()
			return rl.apply(text)
		}
	}
	metrics.RomanizationsTotal.WithLabelValues("passthrough").Inc()
	return text
}

func passthrough(text string) string { return text }

func hasPrefix(prefix string) func(string) bool {
	return func(code string) bool { return strings.HasPrefix(code, prefix) }
}

func equalsAny(values ...string) func(string) bool {
	return func(code string) bool {
		for _, v := range values {
			if code == v {
				return true
			}
		}
		return false
	}
}

func codeSet(values ...string) func(string) bool {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(code string) bool {
		_, ok := set[code]
		return ok
	}
}

// adapter wraps an optional engine: nil engine or a panicking call both fall
// back to the original text. Engine failures are never propagated.
func adapter(engine TransliterateFunc) func(string) string {
	return func(text string) string {
		if engine == nil {
			return text
		}
		out, ok := safeCall(engine, text)
		if !ok {
			return text
		}
		return out
	}
}

// hindiApply prefers the Devanagari engine with Hinglish cleanup and falls
// back to the dictionary romanizer when the engine is absent or fails.
func hindiApply(caps *Capabilities) func(string) string {
	return func(text string) string {
		if caps.Devanagari != nil {
			if raw, ok := safeCall(caps.Devanagari, text); ok {
				return CleanHinglish(raw)
			}
		}
		return RomanizeHindi(text)
	}
}

func safeCall(engine TransliterateFunc, text string) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			out, ok = "", false
		}
	}()
	return engine(text), true
}
