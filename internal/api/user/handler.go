package user

import (
	"context"
	"net/http"

	"estocando/internal/api/response"
	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
)

// UserService define o contrato para registro, login e cadastro de usuários.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterUserHandler lida com a requisição POST /auth/register.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário, hasheia a senha e salva no banco de dados.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Nome, email e senha"
// @Success 201 {object} domain.User "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido (JSON malformado ou campos obrigatórios ausentes)"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Failure 429 {object} domain.ErrorResponse "Muitas tentativas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.UserRegistration
	if err := response.DecodeJSON(w, r, &reg); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	// O PasswordHash não é serializado (tag json:"-").
	newUser, err := h.Service.Register(r.Context(), reg)
	response.Handle(w, r, h.Logger, newUser, err, http.StatusCreated)
}

// LoginUserHandler lida com a requisição POST /auth/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe email/senha, verifica a validade e emite um JSON Web Token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Credenciais do usuário (email e senha)"
// @Success 200 {object} domain.LoginResponse "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 429 {object} domain.ErrorResponse "Muitas tentativas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var loginReq domain.LoginRequest
	if err := response.DecodeJSON(w, r, &loginReq); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), loginReq)
	response.Handle(w, r, h.Logger, resp, err, http.StatusOK)
}

// ListUsersHandler lida com a requisição GET /users.
// @Summary Lista os usuários
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	response.Handle(w, r, h.Logger, users, err, http.StatusOK)
}

// CreateUserHandler lida com a requisição POST /users.
// @Summary Cadastra um usuário sem senha
// @Description Usuários cadastrados aqui podem ser responsáveis por movimentações mas não fazem login.
// @Tags users
// @Accept json
// @Produce json
// @Param user body domain.CreateUserRequest true "Nome e email opcional"
// @Success 201 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Security BearerAuth
// @Router /users [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateUser(r.Context(), req)
	response.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetUserHandler lida com a requisição GET /users/{id}.
// @Summary Busca um usuário pelo ID
// @Tags users
// @Produce json
// @Param id path string true "ID do usuário (UUID)"
// @Success 200 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	found, err := h.Service.GetUser(r.Context(), id)
	response.Handle(w, r, h.Logger, found, err, http.StatusOK)
}

// UpdateUserHandler lida com a requisição PUT /users/{id}.
// @Summary Atualiza nome e/ou email de um usuário
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID do usuário (UUID)"
// @Param user body domain.UpdateUserRequest true "Campos a alterar"
// @Success 200 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req domain.UpdateUserRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.UpdateUser(r.Context(), id, req)
	response.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteUserHandler lida com a requisição DELETE /users/{id}.
// @Summary Remove um usuário
// @Tags users
// @Produce json
// @Param id path string true "ID do usuário (UUID)"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Usuário possui movimentações"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeleteUser(r.Context(), id)
	response.Handle(w, r, h.Logger, domain.MessageResponse{Message: "Usuário removido com sucesso"}, err, http.StatusOK)
}
