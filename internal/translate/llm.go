package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamzaqureshi/lipi/internal/llm"
)

const translateSystemPrompt = `You are a translation engine. Translate the user's text into the requested target language.

Respond with ONLY the translated text. No quotes, no explanations, no romanization.`

// LLMTranslator translates through a chat-completion model.
type LLMTranslator struct {
	llm llm.Client
}

func NewLLMTranslator(client llm.Client) *LLMTranslator {
	return &LLMTranslator{llm: client}
}

func (t *LLMTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target language code: %s\n", target)
	if source != "" && source != "auto" {
		fmt.Fprintf(&sb, "Source language code: %s\n", source)
	}
	sb.WriteString("\nText:\n")
	sb.WriteString(text)

	out, err := t.llm.Complete(ctx, translateSystemPrompt, sb.String())
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty translation from model")
	}
	return out, nil
}
