package repository

import (
	"testing"

	"go-pms-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingIDs(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db,
		testutil.Product(101, "Palm Oil"),
		testutil.Product(102, "Wheat Flour"),
	)
	repo := NewProductRepo(db)

	missing, err := repo.MissingIDs([]uint{101, 102})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = repo.MissingIDs([]uint{101, 777, 888, 777})
	require.NoError(t, err)
	assert.Equal(t, []uint{777, 888}, missing)

	missing, err = repo.MissingIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMissingIDsIgnoresCatalogFlags(t *testing.T) {
	db := testutil.OpenDB(t)
	deleted := testutil.Product(101, "Palm Oil")
	deleted.IsDeleted = true
	unpublished := testutil.Product(102, "Wheat Flour")
	unpublished.IsPublished = false
	testutil.SeedProducts(t, db, deleted, unpublished)

	// Deleted and unpublished rows still satisfy reference checks.
	missing, err := NewProductRepo(db).MissingIDs([]uint{101, 102})
	require.NoError(t, err)
	assert.Empty(t, missing)
}
