// Package pipeline orchestrates one translation request: detect the source
// language, normalize the target code, translate, romanize. Both transports
// (CLI and HTTP) go through Run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hamzaqureshi/lipi/internal/detect"
	"github.com/hamzaqureshi/lipi/internal/langcode"
	"github.com/hamzaqureshi/lipi/internal/metrics"
	"github.com/hamzaqureshi/lipi/internal/romanize"
	"github.com/hamzaqureshi/lipi/internal/translate"
)

// Result is the full output of one request. All three fields are always
// populated strings; translation failures are embedded in Translated rather
// than surfaced as errors.
type Result struct {
	SourceLang string
	TargetLang string
	Translated string
	Romanized  string
}

type Pipeline struct {
	detector   *detect.SafeDetector
	translator translate.Translator
	romanizer  *romanize.Romanizer
	log        *slog.Logger
}

func New(detector *detect.SafeDetector, translator translate.Translator, romanizer *romanize.Romanizer, log *slog.Logger) *Pipeline {
	return &Pipeline{
		detector:   detector,
		translator: translator,
		romanizer:  romanizer,
		log:        log,
	}
}

// Run never fails: a translation error becomes diagnostic text in the
// Translated field and romanization is total by construction. The pipeline
// holds no state across calls and imposes no timeout of its own.
func (p *Pipeline) Run(ctx context.Context, text, targetInput string) Result {
	source := p.detector.Detect(text)
	target := langcode.Normalize(targetInput)

	start := time.Now()
	translated, err := p.translator.Translate(ctx, text, "auto", target)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.TranslationsTotal.WithLabelValues("error").Inc()
		p.log.Warn("translation failed", "target", target, "error", err)
		translated = fmt.Sprintf("(translation error: %v)", err)
	} else {
		metrics.TranslationsTotal.WithLabelValues("ok").Inc()
	}

	return Result{
		SourceLang: source,
		TargetLang: target,
		Translated: translated,
		Romanized:  p.romanizer.Romanize(translated, target),
	}
}
