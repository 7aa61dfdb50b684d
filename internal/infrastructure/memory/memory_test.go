package memory

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	a := &entity.User{ID: uuid.NewString(), Name: "Ana", Email: "ana@example.com", PasswordHash: "h"}
	b := &entity.User{ID: uuid.NewString(), Name: "Luis", Email: "luis@example.com", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))

	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: uuid.NewString(), Email: "ana@example.com"}), domain.ErrEmailAlreadyExists)

	_, err := users.Update(ctx, &entity.User{ID: b.ID, Name: "Luis", Email: "ana@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// conservar el propio email no es conflicto
	u, err := users.Update(ctx, &entity.User{ID: a.ID, Name: "Ana María", Email: "ana@example.com", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Name)
	assert.Empty(t, u.PasswordHash)
}

func TestUserRepo_TopUpAcumula(t *testing.T) {
	ctx := context.Background()
	users := New().Users()
	u := &entity.User{ID: uuid.NewString(), Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, users.Create(ctx, u))

	_, err := users.TopUp(ctx, u.ID, 5000)
	require.NoError(t, err)
	got, err := users.TopUp(ctx, u.ID, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got.Balance)

	missing, err := users.TopUp(ctx, uuid.NewString(), 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_TopUpDesbordeRechazado(t *testing.T) {
	ctx := context.Background()
	users := New().Users()
	u := &entity.User{ID: uuid.NewString(), Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, users.Create(ctx, u))

	_, err := users.TopUp(ctx, u.ID, math.MaxInt64)
	require.NoError(t, err)

	_, err = users.TopUp(ctx, u.ID, math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = users.TopUp(ctx, u.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	got, err := users.GetBalance(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.Balance)
}

func TestStoreRepo_DeleteEnCascada(t *testing.T) {
	ctx := context.Background()
	db := New()
	s := &entity.Store{ID: uuid.NewString(), Name: "Toko", Address: "Jl. 1"}
	require.NoError(t, db.Stores().Create(ctx, s))
	u := &entity.User{ID: uuid.NewString(), Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Users().Create(ctx, u))
	it := &entity.Item{ID: uuid.NewString(), Name: "Kopi", Price: 1, StoreID: s.ID}
	require.NoError(t, db.Items().Create(ctx, it))
	tx := &entity.Transaction{ID: uuid.NewString(), UserID: u.ID, ItemID: it.ID, Quantity: 1, Total: 1, Status: entity.TransactionPending}
	require.NoError(t, db.Transactions().Create(ctx, tx))

	deleted, err := db.Stores().Delete(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err := db.Items().GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	gone, err := db.Transactions().Delete(ctx, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestItemRepo_ReferenciasYPatch(t *testing.T) {
	ctx := context.Background()
	db := New()
	assert.ErrorIs(t, db.Items().Create(ctx, &entity.Item{ID: uuid.NewString(), StoreID: uuid.NewString()}), domain.ErrStoreNotFound)

	s := &entity.Store{ID: uuid.NewString(), Name: "Toko", Address: "Jl. 1"}
	require.NoError(t, db.Stores().Create(ctx, s))
	it := &entity.Item{ID: uuid.NewString(), Name: "Kopi", Price: 5000, Stock: 3, StoreID: s.ID, ImageURL: "a.png"}
	require.NoError(t, db.Items().Create(ctx, it))

	stock := int64(0)
	got, err := db.Items().Update(ctx, it.ID, entity.ItemPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock)
	assert.Equal(t, int64(5000), got.Price)
	assert.Equal(t, "a.png", got.ImageURL)

	other := uuid.NewString()
	_, err = db.Items().Update(ctx, it.ID, entity.ItemPatch{StoreID: &other})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestTransactionRepo_PagoIdempotente(t *testing.T) {
	ctx := context.Background()
	db := New()
	txs := db.Transactions()
	assert.ErrorIs(t, txs.Create(ctx, &entity.Transaction{ID: uuid.NewString(), UserID: uuid.NewString(), ItemID: uuid.NewString()}), domain.ErrReferenceNotFound)

	s := &entity.Store{ID: uuid.NewString()}
	require.NoError(t, db.Stores().Create(ctx, s))
	u := &entity.User{ID: uuid.NewString(), Email: "ana@example.com"}
	require.NoError(t, db.Users().Create(ctx, u))
	it := &entity.Item{ID: uuid.NewString(), StoreID: s.ID}
	require.NoError(t, db.Items().Create(ctx, it))

	tx := &entity.Transaction{ID: uuid.NewString(), UserID: u.ID, ItemID: it.ID, Quantity: 1, Total: 1, Status: entity.TransactionPending}
	require.NoError(t, txs.Create(ctx, tx))
	for i := 0; i < 2; i++ {
		paid, err := txs.MarkPaid(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionPaid, paid.Status)
	}
}
