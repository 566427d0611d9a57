package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/config"
	"estocando/internal/api/item"
	"estocando/internal/api/report"
	"estocando/internal/api/router"
	"estocando/internal/api/user"
	"estocando/internal/domain"
	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/token"
)

type stubItems struct{}

func (stubItems) CreateItem(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	return domain.Item{ID: "novo", Name: req.Name, Quantity: *req.Quantity}, nil
}
func (stubItems) GetItem(ctx context.Context, id string) (domain.Item, error) {
	return domain.Item{ID: id}, nil
}
func (stubItems) ListItems(ctx context.Context) ([]domain.Item, error) {
	return []domain.Item{{Name: "Parafuso"}}, nil
}
func (stubItems) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, actingUserID string) (domain.Item, error) {
	return domain.Item{ID: id}, nil
}
func (stubItems) DeleteItem(ctx context.Context, id string) error { return nil }

type recorder struct {
	mu      sync.Mutex
	entries []domain.RequestLog
}

func (r *recorder) Enqueue(entry domain.RequestLog) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *recorder) paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Method+" "+e.Path)
	}
	return out
}

func setup(t *testing.T) (http.Handler, *token.Service, *recorder) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.Config{
		Environment:          "test",
		RateLimitMaxRequests: 100,
		RateLimitPeriod:      time.Minute,
		AuthRateLimit:        10,
		AllowedOrigins:       []string{"http://localhost:5173"},
	}
	log := logger.NewNop()
	tokens := token.NewService("segredo-de-teste", time.Hour, "Estocando-API")
	rec := &recorder{}

	h := router.NewRouter(router.Dependencies{
		Config:        cfg,
		Logger:        log,
		Cache:         cache.NewFromRedis(rdb),
		TokenSvc:      tokens,
		Recorder:      rec,
		ItemHandler:   item.NewHandler(stubItems{}, nil, log),
		UserHandler:   user.NewHandler(nil, log),
		ReportHandler: report.NewHandler(nil, log),
	})
	return h, tokens, rec
}

func TestPublicRoutes(t *testing.T) {
	h, _, _ := setup(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Estocando")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h, _, _ := setup(t)

	for _, path := range []string{"/items", "/users", "/reports/stock-levels", "/reports/logs"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestProtectedRoutesWithToken(t *testing.T) {
	h, tokens, rec := setup(t)
	jwt, err := tokens.GenerateToken("6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f", "ana@estoque.com", "Ana")
	require.NoError(t, err)

	get := httptest.NewRequest(http.MethodGet, "/items", nil)
	get.Header.Set("Authorization", "Bearer "+jwt)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, get)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Parafuso")

	post := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Porca","quantity":3}`))
	post.Header.Set("Authorization", "Bearer "+jwt)
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, post)
	assert.Equal(t, http.StatusCreated, resp.Code)

	// GET /items não é registrado; POST /items é.
	assert.Equal(t, []string{"POST /items"}, rec.paths())
}

func TestUnknownIDIsRejectedBeforeService(t *testing.T) {
	h, tokens, _ := setup(t)
	jwt, err := tokens.GenerateToken("6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f", "ana@estoque.com", "Ana")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/reports/nao-e-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
