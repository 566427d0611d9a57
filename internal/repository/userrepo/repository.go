package userrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// UserRepository acessa a tabela users.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// translate trata a violação de unicidade do email antes do mapeamento genérico.
func translate(err error, notFound, msg string) error {
	if repository.PQCode(err) == repository.CodeUniqueViolation {
		return apperror.NewConflictError("O email informado já está em uso.")
	}
	return repository.TranslateError(err, notFound, msg)
}

// Save insere um novo usuário no banco de dados.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"name": user.Name})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Prepara dados e ID
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	// 3. Executa o INSERT
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctxTimeout, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if repository.PQCode(err) != repository.CodeUniqueViolation {
			r.logger.Error("Falha ao inserir usuário no DB.", err)
		}
		return domain.User{}, translate(err, "", "Falha ao inserir usuário")
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, translate(err, fmt.Sprintf("Usuário com ID %s não existe.", id), "Falha ao buscar usuário")
	}
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	r.logger.Debug("Iniciando FindByEmail de usuário no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err != sql.ErrNoRows {
			r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		}
		return domain.User{}, translate(err, "Usuário não encontrado.", "Falha ao buscar usuário por email")
	}
	return user, nil
}

// FindAll lista os usuários, do mais novo para o mais antigo.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id`)
	if err != nil {
		r.logger.Error("Falha ao listar usuários no DB.", err)
		return nil, translate(err, "", "Falha ao listar usuários")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translate(err, "", "Falha ao ler usuário")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "", "Falha ao listar usuários")
	}
	return users, nil
}

// Update altera nome e email do usuário.
func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		UPDATE users SET name = $2, email = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(r.DB.QueryRowContext(ctxTimeout, query, user.ID, user.Name, user.Email, time.Now().UTC()))
	if err != nil {
		return domain.User{}, translate(err, fmt.Sprintf("Usuário com ID %s não existe.", user.ID), "Falha ao atualizar usuário")
	}

	r.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"user_id": user.ID})
	return updated, nil
}

// Delete remove o usuário. Usuários com movimentações registradas não podem ser removidos (409).
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate(err, "", "Usuário possui movimentações de estoque e não pode ser removido")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não existe.", id))
	}

	r.logger.Info("Usuário removido com sucesso.", map[string]interface{}{"user_id": id})
	return nil
}
