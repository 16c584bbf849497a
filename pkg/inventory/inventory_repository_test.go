package inventory

import (
	"Go-Pantry-Assistant/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestInventoryRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "quantity", "expiration_date", "created_at"}).
		AddRow("a1", "user-1", "Milk", 2, "2024-01-05", created).
		AddRow("b2", "user-1", "Eggs", 12, nil, created.Add(time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "inventory" WHERE user_id = \$1 ORDER BY created_at asc`).
		WithArgs("user-1").
		WillReturnRows(rows)

	items, err := NewInventoryRepository(db).ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "Milk", items[0].Name)
	require.NotNil(t, items[0].ExpirationDate)
	assert.Equal(t, "2024-01-05", *items[0].ExpirationDate)
	assert.Equal(t, 12, items[1].Quantity)
	assert.Nil(t, items[1].ExpirationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_ListByUserEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "inventory"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "quantity", "expiration_date", "created_at"}))

	items, err := NewInventoryRepository(db).ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestInventoryRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "inventory"`).WillReturnResult(sqlmock.NewResult(0, 1))

	item := &entities.InventoryItem{UserID: "user-1", Name: "Milk", Quantity: 2, CreatedAt: time.Now()}
	require.NoError(t, NewInventoryRepository(db).Insert(context.Background(), item))
	assert.Len(t, item.ID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_DeleteMissingRowSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "inventory" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewInventoryRepository(db).Delete(context.Background(), "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_DeleteTransportFailure(t *testing.T) {
	db, mock := newMockDB(t)
	cause := errors.New("connection refused")
	mock.ExpectExec(`DELETE FROM "inventory"`).WillReturnError(cause)

	err := NewInventoryRepository(db).Delete(context.Background(), "x")
	assert.ErrorIs(t, err, cause)
}
