package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hamzaqureshi/lipi/internal/pipeline"
)

// Runner is what the handler needs from the pipeline.
type Runner interface {
	Run(ctx context.Context, text, target string) pipeline.Result
}

type TranslateHandler struct {
	pipeline Runner
	log      *slog.Logger
}

func NewTranslateHandler(p Runner, log *slog.Logger) *TranslateHandler {
	return &TranslateHandler{pipeline: p, log: log}
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	SourceLang string `json:"source_lang"`
	Translated string `json:"translated"`
	Romanized  string `json:"romanized"`
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	// Blank text short-circuits without touching the pipeline.
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusOK, translateResponse{
			SourceLang: "-",
			Translated: "",
			Romanized:  "",
		})
		return
	}

	if req.Target == "" {
		req.Target = "en"
	}

	result := h.pipeline.Run(r.Context(), req.Text, req.Target)

	writeJSON(w, http.StatusOK, translateResponse{
		SourceLang: result.SourceLang,
		Translated: result.Translated,
		Romanized:  result.Romanized,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
