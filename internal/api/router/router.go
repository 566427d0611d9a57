package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "estocando/docs" // registra o documento OpenAPI gerado pelo swag
	"estocando/config"
	"estocando/internal/api/item"
	"estocando/internal/api/report"
	"estocando/internal/api/response"
	"estocando/internal/api/user"
	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/middleware"
)

// requestTimeout limita o tempo de cada requisição.
const requestTimeout = 30 * time.Second

// Dependencies reúne o que o roteador precisa, já inicializado pelo main.go.
type Dependencies struct {
	Config   config.Config
	Logger   logger.Logger
	Cache    cache.Client
	TokenSvc middleware.TokenService
	Recorder middleware.RequestRecorder

	ItemHandler   *item.Handler
	UserHandler   *user.Handler
	ReportHandler *report.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(d Dependencies) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Recorder))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.SecureHeaders(d.Config.IsProduction()))
	r.Use(middleware.CORS(d.Config.AllowedOrigins, d.Config.AllowedOriginSuffixes))
	r.Use(middleware.RateLimiter(d.Cache, d.Config.RateLimitMaxRequests, d.Config.RateLimitPeriod, d.Logger))

	// --- 2. Rotas Públicas ---
	r.Get("/", WelcomeHandler)
	r.Get("/ping", PingHandler)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.AuthRateLimiter(d.Config.AuthRateLimit))
		r.Post("/register", d.UserHandler.RegisterUserHandler)
		r.Post("/login", d.UserHandler.LoginUserHandler)
	})

	// --- 3. Rotas Protegidas (Bearer JWT) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(d.TokenSvc))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", d.ItemHandler.ListItemsHandler)
			r.Post("/", d.ItemHandler.CreateItemHandler)
			r.Get("/{id}", d.ItemHandler.GetItemHandler)
			r.Put("/{id}", d.ItemHandler.UpdateItemHandler)
			r.Delete("/{id}", d.ItemHandler.DeleteItemHandler)
			r.Post("/{id}/adjust", d.ItemHandler.AdjustStockHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", d.UserHandler.ListUsersHandler)
			r.Post("/", d.UserHandler.CreateUserHandler)
			r.Get("/{id}", d.UserHandler.GetUserHandler)
			r.Put("/{id}", d.UserHandler.UpdateUserHandler)
			r.Delete("/{id}", d.UserHandler.DeleteUserHandler)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/stock-levels", d.ReportHandler.StockLevelsHandler)
			r.Get("/stock-levels/pdf", d.ReportHandler.StockLevelsPDFHandler)
			r.Get("/recent-adjustments", d.ReportHandler.RecentAdjustmentsHandler)
			r.Get("/logs", d.ReportHandler.LogsHandler)
			r.Get("/adjustments/{id}", d.ReportHandler.AdjustmentsByItemHandler)
			r.Get("/{id}", d.ReportHandler.GetAdjustmentHandler)
			r.Delete("/{id}", d.ReportHandler.DeleteAdjustmentHandler)
		})
	})

	return r
}

// WelcomeHandler responde na raiz da API.
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	_ = response.JSON(w, http.StatusOK, map[string]string{
		"message": "Bem-vindo à API Estocando",
		"docs":    "/docs/index.html",
	})
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
