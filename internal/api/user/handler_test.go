package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estocando/internal/api/user"
	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter() (http.Handler, *MockUserService) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	r := chi.NewRouter()
	r.Post("/auth/register", h.RegisterUserHandler)
	r.Post("/auth/login", h.LoginUserHandler)
	r.Get("/users", h.ListUsersHandler)
	r.Post("/users", h.CreateUserHandler)
	r.Get("/users/{id}", h.GetUserHandler)
	r.Put("/users/{id}", h.UpdateUserHandler)
	r.Delete("/users/{id}", h.DeleteUserHandler)
	return r, svc
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRegisterUserHandler_HidesPasswordHash(t *testing.T) {
	r, svc := newRouter()
	email, hash := "ana@estoque.com", "$2a$10$hash"
	svc.On("Register", mock.Anything, domain.UserRegistration{Name: "Ana", Email: email, Password: "segredo123"}).
		Return(domain.User{ID: uuid.NewString(), Name: "Ana", Email: &email, PasswordHash: &hash}, nil)

	rec := do(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"ana@estoque.com","password":"segredo123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "segredo123")
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	r, svc := newRouter()
	svc.On("Register", mock.Anything, mock.Anything).
		Return(domain.User{}, apperror.NewConflictError("O email informado já está em uso."))

	rec := do(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"ana@estoque.com","password":"segredo123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginUserHandler(t *testing.T) {
	r, svc := newRouter()
	id := uuid.NewString()
	svc.On("Login", mock.Anything, domain.LoginRequest{Email: "ana@estoque.com", Password: "segredo123"}).
		Return(domain.LoginResponse{Token: "jwt", User: domain.AuthUser{ID: id, Email: "ana@estoque.com", Name: "Ana"}}, nil)

	rec := do(r, http.MethodPost, "/auth/login", `{"email":"ana@estoque.com","password":"segredo123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "jwt", got.Token)
	assert.Equal(t, id, got.User.ID)
}

func TestLoginUserHandler_Unauthorized(t *testing.T) {
	r, svc := newRouter()
	svc.On("Login", mock.Anything, mock.Anything).
		Return(domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas."))

	rec := do(r, http.MethodPost, "/auth/login", `{"email":"ana@estoque.com","password":"errada"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciais inválidas.")
}

func TestUserRoutes_RejectNonUUID(t *testing.T) {
	r, svc := newRouter()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/users/7", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/users/7", `{"name":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/users/7", "").Code)
	svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestCreateAndDeleteUser(t *testing.T) {
	r, svc := newRouter()
	id := uuid.NewString()
	svc.On("CreateUser", mock.Anything, domain.CreateUserRequest{Name: "Operador"}).
		Return(domain.User{ID: id, Name: "Operador"}, nil)
	svc.On("DeleteUser", mock.Anything, id).Return(nil)

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/users", `{"name":"Operador"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/users/"+id, "").Code)
	svc.AssertExpectations(t)
}
