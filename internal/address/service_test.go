package address

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
)

func setupAddressTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS addresses (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  line1 TEXT NOT NULL,
  line2 TEXT,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  postal_code TEXT NOT NULL,
  phone TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func newTestAddressService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc
}

func validInput() CreateAddressInput {
	return CreateAddressInput{
		Name:       "Home",
		Line1:      "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Phone:      "555-0100",
	}
}

func TestServiceCreateAndListAddresses(t *testing.T) {
	db := setupAddressTestDB(t)
	svc := newTestAddressService(t, db)
	userID := uuid.New()

	created, err := svc.CreateAddress(context.Background(), userID, validInput())
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)

	other := validInput()
	other.Name = "Office"
	_, err = svc.CreateAddress(context.Background(), uuid.New(), other)
	require.NoError(t, err)

	rows, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Home", rows[0].Name)
}

func TestServiceCreateAddressValidation(t *testing.T) {
	db := setupAddressTestDB(t)
	svc := newTestAddressService(t, db)

	input := validInput()
	input.City = "   "
	_, err := svc.CreateAddress(context.Background(), uuid.New(), input)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceDeleteAddressEnforcesOwnership(t *testing.T) {
	db := setupAddressTestDB(t)
	svc := newTestAddressService(t, db)
	owner := uuid.New()

	created, err := svc.CreateAddress(context.Background(), owner, validInput())
	require.NoError(t, err)

	err = svc.DeleteAddress(context.Background(), uuid.New(), created.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	require.NoError(t, svc.DeleteAddress(context.Background(), owner, created.ID))

	rows, err := svc.ListAddresses(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
