package stockrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository"
)

// quantityConstraint é a CHECK (quantity >= 0) da tabela items.
const quantityConstraint = "items_quantity_non_negative"

// CacheInvalidator descarta a cópia em cache de um item alterado pelo motor.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context, id string)
}

// StockRepository grava as movimentações de estoque e lê o histórico.
type StockRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	items     CacheInvalidator
	logger    logger.Logger
}

// NewStockRepository cria e retorna uma nova instância do Repositório de Estoque.
func NewStockRepository(db *sql.DB, dbTimeout time.Duration, items CacheInvalidator, log logger.Logger) *StockRepository {
	return &StockRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		items:     items,
		logger:    log,
	}
}

// plan decide a movimentação a partir do saldo já bloqueado.
// ok=false indica que não há nada a gravar.
type plan func(current int) (t domain.AdjustmentType, quantity int, ok bool, err error)

// ApplyAdjustment aplica uma movimentação IN/OUT ao item.
func (r *StockRepository) ApplyAdjustment(ctx context.Context, itemID string, t domain.AdjustmentType, quantity int, userID string) (domain.Item, error) {
	return r.adjust(ctx, itemID, userID, domain.ItemDetails{}, func(int) (domain.AdjustmentType, int, bool, error) {
		return t, quantity, true, nil
	})
}

// SetQuantity leva o item até target gravando a diferença como uma movimentação.
// details é gravado na mesma transação. Sem diferença e sem details, nada é gravado.
func (r *StockRepository) SetQuantity(ctx context.Context, itemID string, target int, userID string, details domain.ItemDetails) (domain.Item, error) {
	return r.adjust(ctx, itemID, userID, details, func(current int) (domain.AdjustmentType, int, bool, error) {
		if target < 0 {
			return "", 0, false, apperror.NewValidationError("A quantidade não pode ser negativa.")
		}
		t, quantity, ok := domain.DeltaToAdjustment(current, target)
		return t, quantity, ok, nil
	})
}

// adjust executa a movimentação em uma única transação:
// bloqueia a linha do item (FOR UPDATE), confere o usuário, calcula o novo saldo,
// atualiza o item e grava a movimentação. Qualquer falha desfaz as duas escritas.
func (r *StockRepository) adjust(ctx context.Context, itemID, userID string, details domain.ItemDetails, decide plan) (domain.Item, error) {
	r.logger.Debug("Iniciando ajuste de estoque no repositório.", map[string]interface{}{
		"item_id": itemID,
		"user_id": userID,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação para ajuste de estoque.", err)
		return domain.Item{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback() // sem efeito após o Commit

	// 1. Bloqueia o item. Ajustes concorrentes do mesmo item esperam aqui.
	var item domain.Item
	err = tx.QueryRowContext(ctxTimeout, `
		SELECT id, name, description, quantity, created_at, updated_at
		FROM items WHERE id = $1 FOR UPDATE`, itemID,
	).Scan(&item.ID, &item.Name, &item.Description, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Error("Falha ao bloquear item para ajuste.", err)
		}
		return domain.Item{}, repository.TranslateError(err, fmt.Sprintf("Item com ID %s não existe.", itemID), "Falha ao buscar item para ajuste")
	}

	// 2. O usuário responsável precisa existir.
	var exists bool
	if err := tx.QueryRowContext(ctxTimeout, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		r.logger.Error("Falha ao verificar usuário do ajuste.", err)
		return domain.Item{}, apperror.NewDBError("Falha ao verificar usuário", err)
	}
	if !exists {
		return domain.Item{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não existe.", userID))
	}

	// 3. Regra de negócio sobre o saldo bloqueado.
	t, quantity, ok, err := decide(item.Quantity)
	if err != nil {
		return domain.Item{}, err
	}
	if !ok && details.Empty() {
		return item, nil
	}
	newQuantity := item.Quantity
	if ok {
		newQuantity, err = domain.ApplyAdjustment(item.Quantity, t, quantity)
		if err != nil {
			r.logger.Debug("Ajuste rejeitado pela regra de saldo.", map[string]interface{}{
				"item_id":          itemID,
				"current_quantity": item.Quantity,
				"error":            err.Error(),
			})
			return domain.Item{}, err
		}
	}
	if details.Name != nil {
		item.Name = *details.Name
	}
	if details.Description != nil {
		item.Description = details.Description
	}

	// 4. Atualiza o item. A CHECK (quantity >= 0) é a última barreira.
	now := time.Now().UTC()
	current := item.Quantity
	err = tx.QueryRowContext(ctxTimeout, `
		UPDATE items SET quantity = $2, name = $3, description = $4, updated_at = $5
		WHERE id = $1
		RETURNING quantity, updated_at`, itemID, newQuantity, item.Name, item.Description, now,
	).Scan(&item.Quantity, &item.UpdatedAt)
	if err != nil {
		if repository.PQCode(err) == repository.CodeCheckViolation && repository.PQConstraint(err) == quantityConstraint {
			return domain.Item{}, apperror.NewInsufficientStockError(current, quantity)
		}
		r.logger.Error("Falha ao atualizar quantidade do item.", err)
		return domain.Item{}, repository.TranslateError(err, "", "Falha ao atualizar estoque")
	}

	// 5. Registra a movimentação.
	if ok {
		_, err = tx.ExecContext(ctxTimeout, `
			INSERT INTO stock_adjustments (id, item_id, user_id, type, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), itemID, userID, string(t), quantity, now,
		)
		if err != nil {
			r.logger.Error("Falha ao registrar movimentação de estoque.", err)
			return domain.Item{}, repository.TranslateError(err, "", "Falha ao registrar movimentação")
		}
	}

	// 6. Commit
	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de ajuste de estoque.", err)
		return domain.Item{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	r.items.InvalidateCache(ctx, itemID)
	r.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"item_id":      itemID,
		"type":         string(t),
		"quantity":     quantity,
		"new_quantity": item.Quantity,
	})
	return item, nil
}

const adjustmentSelect = `
	SELECT a.id, a.item_id, a.user_id, a.type, a.quantity, a.created_at,
	       i.id, i.name, i.description, i.quantity, i.created_at, i.updated_at,
	       u.id, u.name
	FROM stock_adjustments a
	JOIN items i ON i.id = a.item_id
	JOIN users u ON u.id = a.user_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdjustment(row rowScanner) (domain.StockAdjustment, error) {
	var (
		a    domain.StockAdjustment
		it   domain.Item
		u    domain.UserSummary
		kind string
	)
	err := row.Scan(
		&a.ID, &a.ItemID, &a.UserID, &kind, &a.Quantity, &a.CreatedAt,
		&it.ID, &it.Name, &it.Description, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
		&u.ID, &u.Name,
	)
	if err != nil {
		return domain.StockAdjustment{}, err
	}
	a.Type = domain.AdjustmentType(kind)
	a.Item = &it
	a.User = &u
	return a, nil
}

func (r *StockRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.StockAdjustment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar movimentações no DB.", err)
		return nil, repository.TranslateError(err, "", "Falha ao listar movimentações")
	}
	defer rows.Close()

	out := make([]domain.StockAdjustment, 0)
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, repository.TranslateError(err, "", "Falha ao ler movimentação")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.TranslateError(err, "", "Falha ao listar movimentações")
	}
	return out, nil
}

// FindRecent devolve as últimas movimentações, da mais nova para a mais antiga.
func (r *StockRepository) FindRecent(ctx context.Context, limit int) ([]domain.StockAdjustment, error) {
	return r.list(ctx, adjustmentSelect+` ORDER BY a.created_at DESC, a.id LIMIT $1`, limit)
}

// FindByItem devolve as movimentações de um item, da mais nova para a mais antiga.
func (r *StockRepository) FindByItem(ctx context.Context, itemID string, limit int) ([]domain.StockAdjustment, error) {
	return r.list(ctx, adjustmentSelect+` WHERE a.item_id = $1 ORDER BY a.created_at DESC, a.id LIMIT $2`, itemID, limit)
}

// FindByID busca uma movimentação.
func (r *StockRepository) FindByID(ctx context.Context, id string) (domain.StockAdjustment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	a, err := scanAdjustment(r.DB.QueryRowContext(ctxTimeout, adjustmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return domain.StockAdjustment{}, repository.TranslateError(err, fmt.Sprintf("Movimentação com ID %s não existe.", id), "Falha ao buscar movimentação")
	}
	return a, nil
}

// Delete remove uma entrada do histórico. O saldo do item não é recalculado.
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM stock_adjustments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover movimentação no DB.", err)
		return repository.TranslateError(err, "", "Falha ao remover movimentação")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Movimentação com ID %s não existe.", id))
	}

	r.logger.Info("Movimentação removida do histórico.", map[string]interface{}{"adjustment_id": id})
	return nil
}
