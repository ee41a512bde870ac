package books

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/perfectbooks/stock-api/pkg/db"
	"github.com/perfectbooks/stock-api/pkg/db/models"
)

func setupBooksTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Book{}))
	return conn
}

func TestRepositoryCRUD(t *testing.T) {
	conn := setupBooksTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	book := &models.Book{
		Name:      "Dune",
		Category:  "Fiction",
		Quantity:  10,
		Price:     decimal.NewFromFloat(19.99),
		DateAdded: "2026-08-01",
	}
	require.NoError(t, repo.Create(ctx, book))
	require.NotZero(t, book.ID)

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Name)
	assert.True(t, found.Price.Equal(decimal.NewFromFloat(19.99)), "price %s", found.Price)

	found.Quantity = 3
	require.NoError(t, repo.Save(ctx, found))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 3, listed[0].Quantity)

	require.NoError(t, repo.Delete(ctx, book.ID))

	_, err = repo.FindByID(ctx, book.ID)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestRepositoryListOrder(t *testing.T) {
	conn := setupBooksTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Book{
			Name:      name,
			Category:  "Test",
			Price:     decimal.Zero,
			DateAdded: "2026-08-01",
		}))
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Name)
	assert.Equal(t, "third", listed[2].Name)
}
