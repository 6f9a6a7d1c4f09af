package romanize

import "log/slog"

// TransliterateFunc is a single optional engine call. Implementations may
// panic; callers go through safeCall.
type TransliterateFunc func(text string) string

// Capabilities is the immutable table of optional engines, probed once at
// startup. A nil entry means the engine is unavailable for the process
// lifetime and its adapter passes text through.
type Capabilities struct {
	Japanese   TransliterateFunc
	Chinese    TransliterateFunc
	Korean     TransliterateFunc
	Cyrillic   TransliterateFunc
	Greek      TransliterateFunc
	Devanagari TransliterateFunc
}

// Probe exercises every engine on a small sample and disables the ones that
// fail. There is no re-probe at call time.
func Probe(log *slog.Logger) *Capabilities {
	probe := func(name string, engine TransliterateFunc, sample string) TransliterateFunc {
		if _, ok := safeCall(engine, sample); !ok {
			log.Warn("transliteration engine unavailable", "engine", name)
			return nil
		}
		log.Debug("transliteration engine ready", "engine", name)
		return engine
	}

	return &Capabilities{
		Japanese:   probe("kana", romanizeJapanese, "カナ"),
		Chinese:    probe("pinyin", romanizeChinese, "中文"),
		Korean:     probe("hangul", romanizeKorean, "한글"),
		Cyrillic:   probe("iuliia", romanizeCyrillic, "Привет"),
		Greek:      probe("greek", romanizeGreek, "γεια"),
		Devanagari: probe("itrans", devanagariToITRANS, "हिंदी"),
	}
}
