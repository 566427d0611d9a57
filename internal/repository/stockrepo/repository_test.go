package stockrepo_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository/itemrepo"
	"estocando/internal/repository/repotest"
	"estocando/internal/repository/stockrepo"
	"estocando/internal/repository/userrepo"
)

type fixture struct {
	db    *sql.DB
	items *itemrepo.ItemRepository
	users *userrepo.UserRepository
	stock *stockrepo.StockRepository
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := repotest.Open(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.NewNop()
	items := itemrepo.NewItemRepository(db, cache.NewFromRedis(rdb), 5*time.Second, time.Minute, log)
	return fixture{
		db:    db,
		items: items,
		users: userrepo.NewUserRepository(db, 5*time.Second, log),
		stock: stockrepo.NewStockRepository(db, 5*time.Second, items, log),
	}
}

func (f fixture) seed(t *testing.T, quantity int) (domain.Item, domain.User) {
	t.Helper()
	ctx := context.Background()
	item, err := f.items.Save(ctx, domain.Item{Name: "Parafuso", Quantity: quantity})
	require.NoError(t, err)
	user, err := f.users.Save(ctx, domain.User{Name: "Ana"})
	require.NoError(t, err)
	return item, user
}

func (f fixture) ledgerCount(t *testing.T, itemID string) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM stock_adjustments WHERE item_id = $1`, itemID).Scan(&n))
	return n
}

// Item com 10, entrada de 5 e saída de 20 (rejeitada).
func TestApplyAdjustment_InThenOversizedOut(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 10)

	updated, err := f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentIn, 5, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	assert.Equal(t, 1, f.ledgerCount(t, item.ID))

	_, err = f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentOut, 20, user.ID)
	var insufficient *apperror.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 15, insufficient.Available)
	assert.Equal(t, 20, insufficient.Requested)

	current, err := f.items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, current.Quantity)
	assert.Equal(t, 1, f.ledgerCount(t, item.ID))
}

func TestApplyAdjustment_OutToZero(t *testing.T) {
	f := setup(t)
	item, user := f.seed(t, 7)

	updated, err := f.stock.ApplyAdjustment(context.Background(), item.ID, domain.AdjustmentOut, 7, user.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestApplyAdjustment_UnknownItemOrUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 1)

	_, err := f.stock.ApplyAdjustment(ctx, "0d9c0c2e-6d4a-4d71-9a38-7c0f6a1b2c3d", domain.AdjustmentIn, 1, user.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, err = f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentIn, 1, "0d9c0c2e-6d4a-4d71-9a38-7c0f6a1b2c3d")
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.Equal(t, 0, f.ledgerCount(t, item.ID))
}

func TestApplyAdjustment_InvalidatesItemCache(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 2)
	_, err := f.items.FindByID(ctx, item.ID) // popula o cache
	require.NoError(t, err)

	_, err = f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentIn, 3, user.ID)
	require.NoError(t, err)

	current, err := f.items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.Quantity)
}

// Saídas concorrentes no mesmo item nunca deixam o saldo negativo.
func TestApplyAdjustment_ConcurrentOutsNeverGoNegative(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 10)

	const workers = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentOut, 1, user.ID); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.IsType(t, &apperror.InsufficientStockError{}, err)
			}
		}()
	}
	wg.Wait()

	var quantity int
	require.NoError(t, f.db.QueryRow(`SELECT quantity FROM items WHERE id = $1`, item.ID).Scan(&quantity))
	assert.Equal(t, 0, quantity)
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, f.ledgerCount(t, item.ID))
}

func TestSetQuantity_RecordsDelta(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 10)

	updated, err := f.stock.SetQuantity(ctx, item.ID, 4, user.ID, domain.ItemDetails{})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	updated, err = f.stock.SetQuantity(ctx, item.ID, 4, user.ID, domain.ItemDetails{})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	history, err := f.stock.FindByItem(ctx, item.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.AdjustmentOut, history[0].Type)
	assert.Equal(t, 6, history[0].Quantity)

	_, err = f.stock.SetQuantity(ctx, item.ID, -1, user.ID, domain.ItemDetails{})
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestSetQuantity_DetailsShareTransaction(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 10)
	name := "Parafuso sextavado"

	// Usuário inexistente: nem o nome nem a quantidade mudam.
	_, err := f.stock.SetQuantity(ctx, item.ID, 3, uuid.NewString(), domain.ItemDetails{Name: &name})
	assert.IsType(t, &apperror.NotFoundError{}, err)

	var (
		storedName string
		quantity   int
	)
	require.NoError(t, f.db.QueryRow(`SELECT name, quantity FROM items WHERE id = $1`, item.ID).Scan(&storedName, &quantity))
	assert.Equal(t, item.Name, storedName)
	assert.Equal(t, 10, quantity)

	// Mesma quantidade: o nome muda sem gerar movimentação.
	updated, err := f.stock.SetQuantity(ctx, item.ID, 10, user.ID, domain.ItemDetails{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, 0, f.ledgerCount(t, item.ID))

	description := "M8"
	updated, err = f.stock.SetQuantity(ctx, item.ID, 7, user.ID, domain.ItemDetails{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "M8", *updated.Description)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, 1, f.ledgerCount(t, item.ID))
}

func TestHistoryQueries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 0)
	other, err := f.items.Save(ctx, domain.Item{Name: "Porca", Quantity: 0})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentIn, i+1, user.ID)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	_, err = f.stock.ApplyAdjustment(ctx, other.ID, domain.AdjustmentIn, 9, user.ID)
	require.NoError(t, err)

	recent, err := f.stock.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, other.ID, recent[0].ItemID)
	assert.Equal(t, 3, recent[1].Quantity)
	require.NotNil(t, recent[0].User)
	assert.Equal(t, "Ana", recent[0].User.Name)
	require.NotNil(t, recent[0].Item)
	assert.Equal(t, "Porca", recent[0].Item.Name)

	byItem, err := f.stock.FindByItem(ctx, item.ID, 10)
	require.NoError(t, err)
	require.Len(t, byItem, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{byItem[0].Quantity, byItem[1].Quantity, byItem[2].Quantity})

	one, err := f.stock.FindByID(ctx, byItem[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdjustmentIn, one.Type)

	require.NoError(t, f.stock.Delete(ctx, one.ID))
	_, err = f.stock.FindByID(ctx, one.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.IsType(t, &apperror.NotFoundError{}, f.stock.Delete(ctx, one.ID))
}

func TestItemWithHistoryCannotBeDeleted(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item, user := f.seed(t, 1)
	_, err := f.stock.ApplyAdjustment(ctx, item.ID, domain.AdjustmentOut, 1, user.ID)
	require.NoError(t, err)

	assert.IsType(t, &apperror.ConflictError{}, f.items.Delete(ctx, item.ID))
	assert.IsType(t, &apperror.ConflictError{}, f.users.Delete(ctx, user.ID))
}
