// ABOUTME: HTTP middleware for request logging
// ABOUTME: Logs method, path, status, and duration of every request via slog
package web

import (
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start).Milliseconds()
		switch {
		case rec.status >= 500:
			slog.Error("HTTP error", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration_ms", duration)
		case rec.status >= 400:
			slog.Warn("HTTP error", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration_ms", duration)
		default:
			slog.Debug("HTTP ok", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration_ms", duration)
		}
	})
}
