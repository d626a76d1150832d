package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func TestRepositoryCreateNormalizesEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.User{
		ID:           uuid.New(),
		Email:        "  Buyer@Example.COM ",
		PasswordHash: "hash",
		FirstName:    "Ada",
		LastName:     "Shopper",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", created.Email)

	found, err := repo.FindByEmail(context.Background(), "BUYER@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.co", NormalizeEmail("  A@B.Co "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
