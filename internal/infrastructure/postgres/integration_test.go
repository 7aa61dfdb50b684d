package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, EnsureSchema(ctx, NewTxRunner(pool)))
	return pool
}

func TestIntegracion_FlujoCompleto(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	stores := NewStoreRepository(pool)
	items := NewItemRepository(pool)
	txs := NewTransactionRepository(pool)

	u := &entity.User{ID: uuid.NewString(), Name: "Ana", Email: uuid.NewString() + "@example.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, u))
	t.Cleanup(func() { _, _ = users.Delete(ctx, u.ID) })
	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: uuid.NewString(), Name: "Otra", Email: u.Email, PasswordHash: "x"}), domain.ErrEmailAlreadyExists)

	topped, err := users.TopUp(ctx, u.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), topped.Balance)

	s := &entity.Store{ID: uuid.NewString(), Name: "Toko", Address: "Jl. Merdeka 1"}
	require.NoError(t, stores.Create(ctx, s))
	t.Cleanup(func() { _, _ = stores.Delete(ctx, s.ID) })

	it := &entity.Item{ID: uuid.NewString(), Name: "Kopi", Price: 5000, Stock: 3, StoreID: s.ID, ImageURL: "/uploads/kopi.png"}
	require.NoError(t, items.Create(ctx, it))

	stock := int64(0)
	updated, err := items.Update(ctx, it.ID, entity.ItemPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Stock)
	assert.Equal(t, "Kopi", updated.Name)

	tx := &entity.Transaction{ID: uuid.NewString(), UserID: u.ID, ItemID: it.ID, Quantity: 1, Total: 5000, Status: entity.TransactionPending}
	require.NoError(t, txs.Create(ctx, tx))

	for i := 0; i < 2; i++ {
		paid, err := txs.MarkPaid(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionPaid, paid.Status)
	}

	bad := &entity.Transaction{ID: uuid.NewString(), UserID: uuid.NewString(), ItemID: it.ID, Quantity: 1, Total: 1, Status: entity.TransactionPending}
	assert.ErrorIs(t, txs.Create(ctx, bad), domain.ErrReferenceNotFound)

	deleted, err := txs.Delete(ctx, tx.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	again, err := txs.Delete(ctx, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}
