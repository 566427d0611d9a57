package middleware

import (
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"estocando/internal/domain"
)

// RequestRecorder recebe as entradas de log sem bloquear a resposta.
type RequestRecorder interface {
	Enqueue(entry domain.RequestLog) bool
}

var monitoredPrefixes = []string{"/auth", "/users", "/items", "/reports"}

// Leituras nesses recursos não são registradas.
var unloggedReads = []string{"/items", "/users", "/reports"}

// ShouldLogRequest diz se a requisição entra no log de requisições.
func ShouldLogRequest(method, path string) bool {
	if !hasAnyPrefix(path, monitoredPrefixes) {
		return false
	}
	if method == http.MethodGet && hasAnyPrefix(path, unloggedReads) {
		return false
	}
	return true
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// RequestLogger mede status e duração das requisições monitoradas e
// entrega a entrada ao recorder depois que o handler responde.
func RequestLogger(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ShouldLogRequest(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				recorder.Enqueue(domain.RequestLog{
					Method:     r.Method,
					Path:       r.URL.Path,
					Status:     status,
					DurationMs: time.Since(start).Milliseconds(),
					IP:         clientIP(r),
					UserAgent:  r.UserAgent(),
					CreatedAt:  start.UTC(),
				})
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
