// Package api exposes the read-only query surface over the loaded dataset.
// Handlers never mutate state; every request is an independent read.
package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/model"
	"github.com/runabh1/stress.report/internal/monitoring"
	"github.com/runabh1/stress.report/internal/stress"
)

// ANSI escape codes for request log colouring
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

type Server struct {
	db       *db.DB
	artifact *model.Artifact
}

func NewServer(db *db.DB, artifact *model.Artifact) *Server {
	return &Server{db: db, artifact: artifact}
}

// ServeMux wires every query endpoint. The caller mounts the result under
// /api with a StripPrefix.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/states", s.handleStates)
	mux.HandleFunc("/districts/", s.handleDistricts)
	mux.HandleFunc("/dates/", s.handleDates)
	mux.HandleFunc("/risk", s.handleRisk)
	mux.HandleFunc("/risk-verdict/", s.handleRiskVerdict)
	mux.HandleFunc("/risk-percentile/", s.handleRiskPercentile)
	mux.HandleFunc("/top-districts", s.handleTopDistricts)
	mux.HandleFunc("/district-hotspots/", s.handleDistrictHotspots)
	mux.HandleFunc("/risk-trend/", s.handleRiskTrend)
	mux.HandleFunc("/date-summary/", s.handleDateSummary)
	mux.HandleFunc("/policy-recommendation/", s.handlePolicyRecommendation)
	mux.HandleFunc("/risk-explanation/", s.handleRiskExplanation)
	mux.HandleFunc("/model-stats", s.handleModelStats)
	mux.HandleFunc("/download-ranked-data", s.handleDownloadRankedData)
	mux.HandleFunc("/charts/risk-trend/", s.handleRiskTrendChart)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// pathParams splits the part of the URL after prefix into exactly want
// non-empty segments.
func pathParams(r *http.Request, prefix string, want int) ([]string, bool) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if len(parts) != want {
		return nil, false
	}
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

// limitParam parses an optional positive ?limit= query parameter.
func limitParam(r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, false
	}
	return limit, true
}

// metricsOf coerces a record's absent metrics to zero for the templaters.
func metricsOf(rec *db.Record) stress.Metrics {
	return stress.Metrics{
		RiskScore:       deref(rec.RiskScore),
		BioRatio:        deref(rec.BioRatio),
		ChildPressure:   deref(rec.ChildPressure),
		ElderlyPressure: deref(rec.ElderlyPressure),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, query, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}
