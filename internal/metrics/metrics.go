package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lipi_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})
)

// Pipeline metrics.
var (
	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_translations_total",
		Help: "Translation requests by result",
	}, []string{"result"})

	TranslationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lipi_translation_duration_seconds",
		Help:    "External translation call duration in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	})

	RomanizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_romanizations_total",
		Help: "Romanizations by script family rule",
	}, []string{"script"})

	DetectionOverridesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lipi_detection_overrides_total",
		Help: "Low-confidence classifications overridden to English",
	})
)
