package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// Logger writes one "http.request" line per request. Place it after
// RequestID and TerminalID; Auth fills in the tenant and user once the
// token is validated.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			entry := &logEntry{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), logEntryKey{}, entry)))

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if terminal := ctxutil.TerminalIDFromCtx(ctx); terminal != "" {
				attrs = append(attrs, slog.String("terminal_id", terminal))
			}
			if entry.tenantID != "" {
				attrs = append(attrs, slog.String("tenant_id", entry.tenantID))
			}
			if entry.userID != "" {
				attrs = append(attrs, slog.String("user_id", entry.userID))
			}

			logger.LogAttrs(ctx, levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

type logEntryKey struct{}

// logEntry collects request attributes only known deeper in the chain.
type logEntry struct {
	tenantID string
	userID   string
}

func annotateLog(ctx context.Context, id ctxutil.Identity) {
	entry, ok := ctx.Value(logEntryKey{}).(*logEntry)
	if !ok {
		return
	}
	entry.userID = id.UserID.String()
	if id.TenantID != uuid.Nil {
		entry.tenantID = id.TenantID.String()
	}
}

// statusWriter records the response status and size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
