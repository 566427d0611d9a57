package userservice

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/validation"
)

// invalidCredentials é a única resposta de falha do login, para não revelar se o email existe.
const invalidCredentials = "Credenciais inválidas."

// dummyHash é comparado quando não há hash real (email desconhecido ou usuário
// sem senha), para que o login leve o mesmo tempo em todos os casos de falha.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("estocando-dummy-password"), bcrypt.DefaultCost)

// UserRepository define o contrato que este Serviço espera da camada de Persistência.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

// TokenService é o contrato da camada de token (internal/pkg/token)
type TokenService interface {
	GenerateToken(userID, email, name string) (string, error)
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo  UserRepository
	TokenSvc  TokenService
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo UserRepository, tokenSvc TokenService, v *validation.Validator, log logger.Logger) *UserService {
	return &UserService{
		UserRepo:  repo,
		TokenSvc:  tokenSvc,
		validator: v,
		logger:    log,
	}
}

// Register registra um novo usuário no sistema.
// Ele faz o hashing da senha; email duplicado resulta em ConflictError.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	// 1. Validação
	if err := s.validator.Struct(registration); err != nil {
		return domain.User{}, err
	}

	// 2. Hashing da Senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// 3. Criação do Objeto User
	email := normalizeEmail(registration.Email)
	hash := string(hashedPassword)
	newUser := domain.User{
		Name:         strings.TrimSpace(registration.Name),
		Email:        &email,
		PasswordHash: &hash,
	}

	// 4. Persistência; o repositório traduz a violação de unicidade em ConflictError.
	user, err := s.UserRepo.Save(ctx, newUser)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.LoginResponse{}, err
	}

	// 1. Buscar Usuário pelo Email
	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		// NotFound vira Unauthorized para não dar dicas a invasores.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return domain.LoginResponse{}, apperror.NewUnauthorizedError(invalidCredentials)
		}
		return domain.LoginResponse{}, err
	}

	// 2. Comparar Senhas. Usuários criados sem senha não podem fazer login.
	if user.PasswordHash == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return domain.LoginResponse{}, apperror.NewUnauthorizedError(invalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Debug("Tentativa de login rejeitada.", map[string]interface{}{"user_id": user.ID})
		return domain.LoginResponse{}, apperror.NewUnauthorizedError(invalidCredentials)
	}

	// 3. Gerar JWT
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	tokenString, err := s.TokenSvc.GenerateToken(user.ID, email, user.Name)
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login efetuado.", map[string]interface{}{"user_id": user.ID})
	return domain.LoginResponse{
		Token: tokenString,
		User:  domain.AuthUser{ID: user.ID, Email: email, Name: user.Name},
	}, nil
}

// CreateUser cadastra um usuário sem senha (apenas responsável por movimentações).
func (s *UserService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.User{}, err
	}

	user := domain.User{Name: strings.TrimSpace(req.Name)}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		user.Email = &email
	}

	created, err := s.UserRepo.Save(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	s.logger.Info("Usuário criado.", map[string]interface{}{"user_id": created.ID})
	return created, nil
}

// ListUsers lista os usuários.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.UserRepo.FindAll(ctx)
}

// GetUser busca um usuário pelo ID.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return domain.User{}, err
	}
	return s.UserRepo.FindByID(ctx, id)
}

// UpdateUser altera nome e/ou email.
func (s *UserService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error) {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return domain.User{}, err
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.User{}, err
	}

	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		user.Email = &email
	}

	updated, err := s.UserRepo.Update(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	s.logger.Info("Usuário atualizado.", map[string]interface{}{"user_id": id})
	return updated, nil
}

// DeleteUser remove o usuário. Usuários referenciados por movimentações resultam em 409.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return err
	}
	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Usuário removido.", map[string]interface{}{"user_id": id})
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
