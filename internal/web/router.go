package web

import (
	"log/slog"
	"net/http"

	"github.com/hamzaqureshi/lipi/internal/web/handlers"
	"github.com/hamzaqureshi/lipi/internal/web/middleware"
)

type Router struct {
	pipeline handlers.Runner
	log      *slog.Logger
}

func NewRouter(p handlers.Runner, log *slog.Logger) *Router {
	return &Router{pipeline: p, log: log}
}

// Handler serves the JSON API. Static files and the SPA fallback live in
// cmd/web; only /api/ paths are routed here.
func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	translateHandler := handlers.NewTranslateHandler(r.pipeline, r.log)

	mux.Handle("POST /api/translate",
		middleware.Chain(
			http.HandlerFunc(translateHandler.Translate),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
		),
	)

	return middleware.CORS(mux)
}
