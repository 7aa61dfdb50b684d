package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

const (
	userID  = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	storeID = "6fa459ea-ee8a-3ca4-894e-db77e160355e"
	itemID  = "886313e1-3b8a-5372-9b90-0c9aee199e5d"
	txID    = "123e4567-e89b-12d3-a456-426614174000"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepo_Create_EmailDuplicado(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(userID, "Ana", "ana@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.User{ID: userID, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_Create_CompletaCamposDeLaBase(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(userID, "Ana", "ana@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"balance", "created_at", "updated_at"}).AddRow(int64(0), now, now))

	u := &entity.User{ID: userID, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(0), u.Balance)
	assert.Equal(t, now, u.CreatedAt)
}

func TestUserRepo_GetByEmail_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nadie@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_TopUp(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
		WithArgs(int64(5000), userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "balance", "updated_at"}).
			AddRow(userID, "Ana", "ana@example.com", int64(5000), now))

	u, err := repo.TopUp(context.Background(), userID, 5000)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(5000), u.Balance)
}

func TestUserRepo_TopUp_DesbordeEsMontoInvalido(t *testing.T) {
	for _, code := range []string{"22003", "23514"} {
		t.Run(code, func(t *testing.T) {
			mock := newMock(t)
			repo := NewUserRepository(mock)

			mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
				WithArgs(int64(9223372036854775807), userID).
				WillReturnError(&pgconn.PgError{Code: code})

			u, err := repo.TopUp(context.Background(), userID, 9223372036854775807)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestUserRepo_Update_EmailDeOtroUsuario(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET name = $1")).
		WithArgs("Ana", "luis@example.com", "hash", userID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	u, err := repo.Update(context.Background(), &entity.User{ID: userID, Name: "Ana", Email: "luis@example.com", PasswordHash: "hash"})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_Delete_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM users")).WithArgs(userID).WillReturnError(pgx.ErrNoRows)

	u, err := repo.Delete(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStoreRepo_List_VacioNoEsNil(t *testing.T) {
	mock := newMock(t)
	repo := NewStoreRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stores ORDER BY created_at")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "created_at"}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStoreRepo_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewStoreRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE stores SET name = $1, address = $2 WHERE id = $3")).
		WithArgs("Toko B", "Jl. Baru", storeID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "created_at"}).
			AddRow(storeID, "Toko B", "Jl. Baru", now))

	s, err := repo.Update(context.Background(), &entity.Store{ID: storeID, Name: "Toko B", Address: "Jl. Baru"})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Toko B", s.Name)
}

func TestStoreRepo_GetByID_ErrorDeBase(t *testing.T) {
	mock := newMock(t)
	repo := NewStoreRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stores WHERE id = $1")).
		WithArgs(storeID).
		WillReturnError(errors.New("conexión cerrada"))

	s, err := repo.GetByID(context.Background(), storeID)
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "get store")
}

func TestItemRepo_Update_Coalesce(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)
	now := time.Now()
	price := int64(7500)

	mock.ExpectQuery(regexp.QuoteMeta("price = COALESCE($2, price)")).
		WithArgs(pgxmock.AnyArg(), &price, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), itemID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price", "stock", "store_id", "image_url", "created_at"}).
			AddRow(itemID, "Kopi", int64(7500), int64(3), storeID, "https://img/kopi.png", now))

	it, err := repo.Update(context.Background(), itemID, entity.ItemPatch{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, int64(7500), it.Price)
	assert.Equal(t, "Kopi", it.Name)
}

func TestItemRepo_Create_TiendaInexistente(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO items")).
		WithArgs(itemID, "Kopi", int64(5000), int64(3), storeID, "url").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Item{ID: itemID, Name: "Kopi", Price: 5000, Stock: 3, StoreID: storeID, ImageURL: "url"})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestItemRepo_ListByStore(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE store_id = $1")).
		WithArgs(storeID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price", "stock", "store_id", "image_url", "created_at"}).
			AddRow(itemID, "Kopi", int64(5000), int64(3), storeID, "url", now))

	list, err := repo.ListByStore(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, storeID, list[0].StoreID)
}

func TestTransactionRepo_Create_ReferenciaInexistente(t *testing.T) {
	mock := newMock(t)
	repo := NewTransactionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(txID, userID, itemID, int64(2), int64(10000), "pending").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Transaction{
		ID: txID, UserID: userID, ItemID: itemID, Quantity: 2, Total: 10000, Status: entity.TransactionPending,
	})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestTransactionRepo_MarkPaid(t *testing.T) {
	mock := newMock(t)
	repo := NewTransactionRepository(mock)
	now := time.Now()
	cols := []string{"id", "user_id", "item_id", "quantity", "total", "status", "created_at"}

	// pagar dos veces devuelve la misma fila pagada
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET status = 'paid' WHERE id = $1")).
			WithArgs(txID).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(txID, userID, itemID, int64(2), int64(10000), "paid", now))
	}

	for i := 0; i < 2; i++ {
		tx, err := repo.MarkPaid(context.Background(), txID)
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.Equal(t, entity.TransactionPaid, tx.Status)
	}
}

func TestTransactionRepo_Delete_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := NewTransactionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM transactions")).WithArgs(txID).WillReturnError(pgx.ErrNoRows)

	tx, err := repo.Delete(context.Background(), txID)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestEnsureSchema_CorreEnTransaccion(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCommit()

	require.NoError(t, EnsureSchema(context.Background(), NewTxRunner(mock)))
}

func TestEnsureSchema_RollbackSiFalla(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
		WillReturnError(errors.New("permiso denegado"))
	mock.ExpectRollback()

	err := EnsureSchema(context.Background(), NewTxRunner(mock))
	assert.ErrorContains(t, err, "aplicar schema")
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key (SQLSTATE 23505)")))
}
