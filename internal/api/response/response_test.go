package response_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/internal/api/response"
	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandle_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	response.Handle(rec, req, logger.NewNop(), map[string]int{"quantity": 3}, nil, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"quantity":3}`, rec.Body.String())
}

func TestError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	err := apperror.NewFieldValidationError("name: é obrigatório", map[string]string{"name": "é obrigatório"})

	response.Error(rec, req, logger.NewNop(), err)

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Equal(t, map[string]string{"name": "é obrigatório"}, body.Details)
}

func TestError_InternalIsGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	response.Error(rec, req, logger.NewNop(), errors.New("pq: relation \"items\" does not exist"))

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, body.Message, "relation")
}

func TestDecodeJSON(t *testing.T) {
	var dst domain.LoginRequest

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	require.NoError(t, response.DecodeJSON(rec, req, &dst))
	assert.Equal(t, "a@b.com", dst.Email)

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":`))
	assert.IsType(t, &apperror.ValidationError{}, response.DecodeJSON(rec, req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"role":"admin"}`))
	assert.IsType(t, &apperror.ValidationError{}, response.DecodeJSON(rec, req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(``))
	assert.IsType(t, &apperror.ValidationError{}, response.DecodeJSON(rec, req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}{"email":"c@d.com"}`))
	assert.IsType(t, &apperror.ValidationError{}, response.DecodeJSON(rec, req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"} lixo`))
	assert.IsType(t, &apperror.ValidationError{}, response.DecodeJSON(rec, req, &dst))

	// Espaços e quebra de linha ao final continuam aceitos.
	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{\"email\":\"a@b.com\",\"password\":\"x\"}\n"))
	assert.NoError(t, response.DecodeJSON(rec, req, &dst))
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathUUID(t *testing.T) {
	req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")
	id, err := response.PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, "6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f", id)

	req = withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "123")
	_, err = response.PathUUID(req, "id")
	assert.IsType(t, &apperror.ValidationError{}, err)
}
