package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bpolitiadis/leadwave/pkg/clientip"
	"github.com/bpolitiadis/leadwave/pkg/logger"
)

// statusWriter wraps http.ResponseWriter to capture the final status code
// and bytes written for the request log line.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Logging returns middleware that logs one line per request: method, path,
// masked client IP, final status, response size, and latency. The client
// IP is masked before it reaches the logger.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			log.InfoContext(r.Context(), "request received",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", logger.MaskIP(clientip.GetIP(r))),
			)

			next.ServeHTTP(sw, r)

			if sw.status == 0 {
				sw.status = http.StatusOK
			}
			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.size),
				slog.Duration("latency", time.Since(start)),
			)
		})
	}
}
