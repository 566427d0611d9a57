// Package repository reúne o que é comum aos repositórios PostgreSQL.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	apperror "estocando/internal/errors"
)

// Códigos SQLSTATE tratados explicitamente.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNumericOutOfRange   = "22003"
)

// PQCode devolve o SQLSTATE de um erro do driver, ou "" se não houver.
func PQCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// PQConstraint devolve o nome da constraint violada, se houver.
func PQConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// TranslateError converte um erro do driver no AppError correspondente.
// notFound é a mensagem usada para sql.ErrNoRows; msg descreve a operação.
func TranslateError(err error, notFound, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NewNotFoundError(notFound)
	}

	switch PQCode(err) {
	case CodeUniqueViolation:
		return apperror.NewConflictError(fmt.Sprintf("%s: registro duplicado.", msg))
	case CodeForeignKeyViolation:
		return apperror.NewConflictError(fmt.Sprintf("%s: o registro está referenciado por outro recurso.", msg))
	case CodeCheckViolation:
		return apperror.NewValidationError(fmt.Sprintf("%s: valor fora das regras do estoque.", msg))
	case CodeNumericOutOfRange:
		return apperror.NewValidationError(fmt.Sprintf("%s: valor numérico fora do intervalo permitido.", msg))
	}
	return apperror.NewDBError(msg, err)
}
