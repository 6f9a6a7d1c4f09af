// Package translate is the boundary to the external translation service.
// Two backends exist: the Google web endpoint and an LLM. The factory lets
// the transports switch backends without caring which one is wired.
package translate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hamzaqureshi/lipi/internal/llm"
)

// Translator translates text between languages. source may be "auto";
// target is a canonical code such as en, ur, or zh-CN.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type Backend string

const (
	BackendGoogle Backend = "google"
	BackendLLM    Backend = "llm"
)

type Config struct {
	Backend Backend
	// LLM is required for BackendLLM, ignored otherwise.
	LLM    llm.Client
	Logger *slog.Logger
}

func New(cfg Config) (Translator, error) {
	if cfg.Logger != nil {
		cfg.Logger.Info("creating translator", "backend", cfg.Backend)
	}
	switch cfg.Backend {
	case BackendGoogle:
		return NewGoogleWebTranslator(), nil
	case BackendLLM:
		if cfg.LLM == nil {
			return nil, fmt.Errorf("llm backend requires a configured llm client")
		}
		return NewLLMTranslator(cfg.LLM), nil
	default:
		return nil, fmt.Errorf("unknown translation backend: %s (supported: google, llm)", cfg.Backend)
	}
}
