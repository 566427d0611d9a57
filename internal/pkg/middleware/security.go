package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/unrolled/secure"
)

// SecureHeaders aplica os headers de segurança padrão (nosniff, frame deny, etc.).
// O HSTS só é enviado em produção.
func SecureHeaders(production bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		ReferrerPolicy:       "no-referrer",
		STSSeconds:           31536000,
		STSIncludeSubdomains: true,
		IsDevelopment:        !production,
	})
	return sec.Handler
}

// CORS libera as origens configuradas e qualquer origem https cujo host
// termine com um dos sufixos permitidos (previews da Vercel, Codespaces).
func CORS(allowedOrigins, allowedSuffixes []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return OriginAllowed(origin, allowedOrigins, allowedSuffixes)
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// OriginAllowed aplica as regras de CORS a uma origem.
func OriginAllowed(origin string, allowedOrigins, allowedSuffixes []string) bool {
	if origin == "" {
		return false
	}
	for _, o := range allowedOrigins {
		if strings.EqualFold(strings.TrimRight(o, "/"), origin) {
			return true
		}
	}
	host, ok := strings.CutPrefix(origin, "https://")
	if !ok {
		return false
	}
	for _, suffix := range allowedSuffixes {
		if suffix != "" && strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
