package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/logger"
)

// TooManyRequestsError é devolvido quando o cliente excede a janela de requisições.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string    { return "Limite de requisições excedido. Tente novamente mais tarde." }
func (e *TooManyRequestsError) Category() string { return "RATE_LIMITED" }
func (e *TooManyRequestsError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *TooManyRequestsError) Unwrap() error    { return nil }

// RateLimiter aplica uma janela fixa por IP usando INCR + EXPIRE no Redis.
// Um contador que ficou sem expiração recebe a janela na requisição seguinte.
// Se o Redis falhar, a requisição segue (fail open) e o problema é registrado.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			ctx := r.Context()

			count, err := client.IncrWindow(ctx, key, window)
			if err != nil {
				log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", window.Seconds()))
				writeError(w, &TooManyRequestsError{})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP usa o RemoteAddr (já corrigido pelo middleware RealIP do chi).
func clientIP(r *http.Request) string {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}

// AuthRateLimiter limita tentativas de login/registro por IP em memória,
// independente do Redis.
func AuthRateLimiter(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, &TooManyRequestsError{})
		}),
	)
}
