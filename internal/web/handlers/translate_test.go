package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hamzaqureshi/lipi/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	lastText   string
	lastTarget string
	result     pipeline.Result
	calls      int
}

func (s *stubRunner) Run(_ context.Context, text, target string) pipeline.Result {
	s.calls++
	s.lastText = text
	s.lastTarget = target
	return s.result
}

func newTestHandler(runner *stubRunner) *TranslateHandler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTranslateHandler(runner, log)
}

func doRequest(h *TranslateHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Translate(rec, req)
	return rec
}

func TestTranslateHappyPath(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{
		SourceLang: "fr",
		TargetLang: "ur",
		Translated: "سلام",
		Romanized:  "salaam",
	}}
	rec := doRequest(newTestHandler(runner), `{"text":"bonjour","target":"urdu"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fr", resp.SourceLang)
	assert.Equal(t, "سلام", resp.Translated)
	assert.Equal(t, "salaam", resp.Romanized)
	assert.Equal(t, "bonjour", runner.lastText)
	assert.Equal(t, "urdu", runner.lastTarget)
}

func TestTranslateBlankTextShortCircuits(t *testing.T) {
	runner := &stubRunner{}
	rec := doRequest(newTestHandler(runner), `{"text":"   \n","target":"ur"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "-", resp.SourceLang)
	assert.Equal(t, "", resp.Translated)
	assert.Equal(t, "", resp.Romanized)
	assert.Zero(t, runner.calls, "pipeline must not run for blank text")
}

func TestTranslateDefaultsTargetToEnglish(t *testing.T) {
	runner := &stubRunner{}
	doRequest(newTestHandler(runner), `{"text":"hola"}`)

	assert.Equal(t, "en", runner.lastTarget)
}

func TestTranslateInvalidJSON(t *testing.T) {
	runner := &stubRunner{}
	rec := doRequest(newTestHandler(runner), `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, runner.calls)
}
