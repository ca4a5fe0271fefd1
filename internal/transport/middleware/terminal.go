package middleware

import (
	"net/http"
	"strings"

	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

const maxTerminalIDLen = 64

// TerminalID records which front-desk terminal sent the request. The value
// ends up on audit entries.
func TerminalID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Terminal-Id"))
		if len(id) > maxTerminalIDLen {
			id = id[:maxTerminalIDLen]
		}
		if id != "" {
			r = r.WithContext(ctxutil.WithTerminalID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
