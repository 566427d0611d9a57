package itemrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estocando/internal/domain"
	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository"
)

// Define a chave de cache para itens.
const itemCacheKey = "item:%s"

const itemColumns = `id, name, description, quantity, created_at, updated_at`

// ItemRepository acessa a tabela items. FindByID usa a estratégia Cache-Aside no Redis.
type ItemRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewItemRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewItemRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ItemRepository {
	return &ItemRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

// Save insere um novo item.
func (r *ItemRepository) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	r.logger.Debug("Iniciando Save de item no repositório.", map[string]interface{}{"name": item.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO items (` + itemColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctxTimeout, query,
		item.ID, item.Name, item.Description, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir item no DB.", err)
		return domain.Item{}, repository.TranslateError(err, "", "Falha ao inserir item")
	}

	r.logger.Info("Item salvo com sucesso no repositório.", map[string]interface{}{"item_id": item.ID, "quantity": item.Quantity})
	return item, nil
}

// FindByID busca um item pelo ID, utilizando a estratégia Cache-Aside.
// Falhas do Redis nunca derrubam a leitura: o repositório segue para o DB.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (domain.Item, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(itemCacheKey, id)

	// --- 1. Cache-Aside (READ) ---
	cached, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		var item domain.Item
		if json.Unmarshal([]byte(cached), &item) == nil {
			r.logger.Debug("Item encontrado no cache.", map[string]interface{}{"item_id": id})
			return item, nil
		}
		r.logger.Warn("Item em cache corrompido; consultando o DB.", map[string]interface{}{"item_id": id})
	} else if err != cache.ErrCacheMiss {
		r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"item_id": id, "error": err.Error()})
	}

	// --- 2. Busca no Banco de Dados ---
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err != nil {
		if err != sql.ErrNoRows {
			r.logger.Error("Falha ao buscar item no DB.", err)
		}
		return domain.Item{}, repository.TranslateError(err, fmt.Sprintf("Item com ID %s não existe.", id), "Falha ao buscar item")
	}

	// --- 3. Cache-Aside (WRITE) ---
	if payload, marshalErr := json.Marshal(item); marshalErr == nil {
		if setErr := r.Cache.Set(ctxTimeout, key, payload, r.CacheTTL); setErr != nil {
			r.logger.Warn("Falha ao gravar item no cache.", map[string]interface{}{"item_id": id, "error": setErr.Error()})
		}
	}

	return item, nil
}

// FindAll lista os itens, do mais novo para o mais antigo.
func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at DESC, id`)
}

// FindAllByName lista os itens em ordem alfabética (relatório de níveis de estoque).
func (r *ItemRepository) FindAllByName(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY name ASC, id`)
}

func (r *ItemRepository) list(ctx context.Context, query string) ([]domain.Item, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar itens no DB.", err)
		return nil, repository.TranslateError(err, "", "Falha ao listar itens")
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, repository.TranslateError(err, "", "Falha ao ler item")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.TranslateError(err, "", "Falha ao listar itens")
	}
	return items, nil
}

// Update altera nome e descrição. A quantidade só muda pelo motor de ajustes.
func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	r.logger.Debug("Iniciando Update de item no repositório.", map[string]interface{}{"item_id": item.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		UPDATE items SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + itemColumns

	updated, err := scanItem(r.DB.QueryRowContext(ctxTimeout, query, item.ID, item.Name, item.Description, time.Now().UTC()))
	if err != nil {
		return domain.Item{}, repository.TranslateError(err, fmt.Sprintf("Item com ID %s não existe.", item.ID), "Falha ao atualizar item")
	}

	r.InvalidateCache(ctx, item.ID)
	r.logger.Info("Item atualizado com sucesso.", map[string]interface{}{"item_id": item.ID})
	return updated, nil
}

// Delete remove o item. Itens com movimentações no histórico não podem ser removidos (409).
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if repository.PQCode(err) != repository.CodeForeignKeyViolation {
			r.logger.Error("Falha ao remover item no DB.", err)
		}
		return repository.TranslateError(err, "", "Item possui movimentações de estoque e não pode ser removido")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.TranslateError(sql.ErrNoRows, fmt.Sprintf("Item com ID %s não existe.", id), "")
	}

	r.InvalidateCache(ctx, id)
	r.logger.Info("Item removido com sucesso.", map[string]interface{}{"item_id": id})
	return nil
}

// InvalidateCache descarta o item do cache (chamado após qualquer escrita).
func (r *ItemRepository) InvalidateCache(ctx context.Context, id string) {
	if err := r.Cache.Delete(ctx, fmt.Sprintf(itemCacheKey, id)); err != nil {
		r.logger.Warn("Falha ao invalidar item no cache.", map[string]interface{}{"item_id": id, "error": err.Error()})
	}
}
