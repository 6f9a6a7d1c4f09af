package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hamzaqureshi/lipi/internal/anthropic"
	"github.com/hamzaqureshi/lipi/internal/detect"
	"github.com/hamzaqureshi/lipi/internal/google"
	"github.com/hamzaqureshi/lipi/internal/llm"
	"github.com/hamzaqureshi/lipi/internal/logger"
	"github.com/hamzaqureshi/lipi/internal/pipeline"
	"github.com/hamzaqureshi/lipi/internal/romanize"
	"github.com/hamzaqureshi/lipi/internal/translate"
	"github.com/hamzaqureshi/lipi/internal/web"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

//go:embed all:dist
var staticFiles embed.FS

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	flags := ff.NewFlagSet("lipi-web")

	var (
		port            = flags.Int64Long("port", 3000, "HTTP server port")
		detector        = flags.StringEnumLong("detector", "language detection provider", "lingua", "whatlang")
		translator      = flags.StringEnumLong("translator", "translation backend", "google", "llm")
		llmProvider     = flags.StringEnumLong("llm-provider", "LLM provider for the llm translation backend", "anthropic", "google")
		llmModel        = flags.StringLong("llm-model", "", "LLM model name")
		anthropicAPIKey = flags.StringLong("anthropic-api-key", "", "Anthropic API key")
		googleAPIKey    = flags.StringLong("google-api-key", "", "Google API key")
	)

	if err := ff.Parse(flags, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(flags))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	classifier, err := detect.NewClassifier(*detector)
	if err != nil {
		return err
	}
	log.Info("language classifier ready", "provider", *detector)

	var llmClient llm.Client
	if *translator == "llm" {
		switch *llmProvider {
		case "anthropic":
			if *anthropicAPIKey == "" {
				return errors.New("anthropic-api-key is required when using the anthropic provider")
			}
			llmClient = anthropic.NewClient(*anthropicAPIKey, anthropic.Model(*llmModel))
		case "google":
			if *googleAPIKey == "" {
				return errors.New("google-api-key is required when using the google provider")
			}
			llmClient, err = google.NewClient(ctx, *googleAPIKey, google.Model(*llmModel))
			if err != nil {
				return fmt.Errorf("creating Google client: %w", err)
			}
		}
	}

	trans, err := translate.New(translate.Config{
		Backend: translate.Backend(*translator),
		LLM:     llmClient,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	caps := romanize.Probe(log)
	pipe := pipeline.New(detect.NewSafeDetector(classifier), trans, romanize.New(caps), log)

	apiHandler := web.NewRouter(pipe, log).Handler()

	distFS, err := fs.Sub(staticFiles, "dist")
	if err != nil {
		return fmt.Errorf("creating sub filesystem: %w", err)
	}
	fileServer := http.FileServer(http.FS(distFS))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"ok"}`)
	})
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// API routes go to the router
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}

		// Try to serve a static file
		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}
		if _, err := fs.Stat(distFS, strings.TrimPrefix(path, "/")); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		// SPA fallback: serve index.html for any unmatched path
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-sigChan:
			log.Info("received signal, shutting down gracefully", "signal", sig)
			cancel(errors.New("signal received"))
		case <-gctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
