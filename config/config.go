package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config armazena todas as configurações da API Estocando.
// É carregada uma única vez no main.go e repassada explicitamente às camadas;
// nenhuma regra de negócio lê variáveis de ambiente diretamente.
type Config struct {
	// Geral
	Port            string        `envconfig:"PORT" default:"8080"`
	Environment     string        `envconfig:"ENV" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"` // json | pretty
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	DBTimeout   time.Duration `envconfig:"DB_TIMEOUT" default:"5s"`

	// Cache (Redis)
	RedisAddr string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// Segurança (JWT)
	JWTSecretKey string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	TokenExpiry  time.Duration `envconfig:"JWT_EXPIRY" default:"1h"`
	TokenIssuer  string        `envconfig:"JWT_ISSUER" default:"Estocando-API"`

	// Rate Limiting
	RateLimitMaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	RateLimitPeriod      time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1m"`
	AuthRateLimit        int           `envconfig:"AUTH_RATE_LIMIT" default:"10"` // por minuto, por IP

	// CORS
	AllowedOrigins        []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3333,http://localhost:5173,http://localhost:3000"`
	AllowedOriginSuffixes []string `envconfig:"CORS_ALLOWED_ORIGIN_SUFFIXES" default:".vercel.app,.app.github.dev"`

	// Log de requisições
	RequestLogBuffer int `envconfig:"REQUEST_LOG_BUFFER" default:"256"`
}

// Load carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) deve ter sido carregado antes pelo godotenv.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("configuração inválida: %w", err)
	}

	if cfg.DatabaseURL == "" || cfg.JWTSecretKey == "" {
		return Config{}, fmt.Errorf("configuração inválida: DATABASE_URL e JWT_SECRET_KEY devem ser definidas")
	}
	if cfg.RateLimitMaxRequests <= 0 {
		return Config{}, fmt.Errorf("configuração inválida: RATE_LIMIT_MAX_REQUESTS deve ser positivo")
	}
	if cfg.RequestLogBuffer <= 0 {
		return Config{}, fmt.Errorf("configuração inválida: REQUEST_LOG_BUFFER deve ser positivo")
	}

	return cfg, nil
}

// IsProduction indica se a aplicação roda em produção.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
