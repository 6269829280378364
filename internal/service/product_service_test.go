package service

import (
	"testing"

	"go-pms-backend/internal/model"
	"go-pms-backend/internal/repository"
	"go-pms-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(t *testing.T) (ProductService, *gorm.DB) {
	db := testutil.OpenDB(t)
	return NewProductService(repository.NewProductRepo(db)), db
}

func TestSearchCleansNamesAndAppliesDefaults(t *testing.T) {
	svc, db := newProductService(t)
	testutil.SeedProducts(t, db,
		model.Product{ProductID: 1, Name: "  \"Palm\\ Oil\"\n", IsPublished: true},
		model.Product{ProductID: 2, Name: "\t \n", IsPublished: true},
		model.Product{ProductID: 3, Name: "Hidden", IsPublished: false},
		model.Product{ProductID: 4, Name: "Gone", IsPublished: true, IsDeleted: true},
	)

	products, err := svc.Search("", "", 50)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Palm Oil", products[0].Name)
	assert.Equal(t, "SINGLE", products[0].InventoryType)
	assert.Equal(t, "WEIGHT", products[0].InventoryUnitType)
}

func TestSearchMatchesNameOrID(t *testing.T) {
	svc, db := newProductService(t)
	testutil.SeedProducts(t, db,
		testutil.Product(105, "Palm Oil"),
		testutil.Product(230, "Sugar"),
	)

	byName, err := svc.Search("oil", "", 50)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.EqualValues(t, 105, byName[0].ProductID)

	byID, err := svc.Search("23", "", 50)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.EqualValues(t, 230, byID[0].ProductID)
}

func TestSearchClampsLimit(t *testing.T) {
	svc, db := newProductService(t)
	testutil.SeedProducts(t, db,
		testutil.Product(1, "Alpha"),
		testutil.Product(2, "Beta"),
		testutil.Product(3, "Gamma"),
	)

	products, err := svc.Search("", "", 0)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	products, err = svc.Search("", "", 100000)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestSearchForRoleFilters(t *testing.T) {
	svc, db := newProductService(t)
	testutil.SeedProducts(t, db,
		testutil.Product(101, "Palm Oil"),
		testutil.Product(102, "Wheat Flour"),
		testutil.Product(200, "Biscuit 200g"),
	)
	require.NoError(t, db.Create(&model.BOM{ProductID: 200, BOMVersion: "v1", Status: "DRAFT"}).Error)
	require.NoError(t, db.Create(&model.BOMItem{BOMID: 1, RawMaterialID: 101, QuantityPerUnit: decimal.NewFromInt(1), UnitType: "KG"}).Error)
	require.NoError(t, db.Create(&model.Issue{Status: "DRAFT"}).Error)
	require.NoError(t, db.Create(&model.IssueItem{IssueID: 1, RawMaterialID: 102, Quantity: decimal.NewFromInt(1), UnitType: "KG"}).Error)

	raw, err := svc.Search("", "raw_material", 50)
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "Palm Oil", raw[0].Name)
	assert.Equal(t, "Wheat Flour", raw[1].Name)

	finished, err := svc.Search("", "finished", 50)
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.EqualValues(t, 200, finished[0].ProductID)
}

func TestUnitTypesMergeUsedValues(t *testing.T) {
	svc, db := newProductService(t)
	testutil.SeedProducts(t, db, testutil.Product(200, "Biscuit 200g"), testutil.Product(101, "Palm Oil"))
	require.NoError(t, db.Create(&model.BOM{ProductID: 200, BOMVersion: "v1", Status: "DRAFT"}).Error)
	require.NoError(t, db.Create(&model.BOMItem{BOMID: 1, RawMaterialID: 101, QuantityPerUnit: decimal.NewFromInt(1), UnitType: "drum"}).Error)

	types, err := svc.UnitTypes()
	require.NoError(t, err)
	assert.Contains(t, types, "KG")
	assert.Contains(t, types, "PCS")
	assert.Contains(t, types, "DRUM")
	// Defaults come first, extras after.
	assert.Equal(t, "KG", types[0])
	assert.Equal(t, "DRUM", types[len(types)-1])
}
