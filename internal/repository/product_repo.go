package repository

import (
	"strings"

	"go-pms-backend/internal/model"

	"gorm.io/gorm"
)

// ProductSearch are the catalog listing parameters. For narrows by role:
// "raw_material" keeps products referenced by any line-item table, "finished"
// keeps products that head a BOM.
type ProductSearch struct {
	Term  string
	For   string
	Limit int
}

type ProductRepository interface {
	MissingIDs(ids []uint) ([]uint, error)
	Search(params ProductSearch) ([]model.Product, error)
	UnitTypes() ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// MissingIDs reports which of the given product ids have no catalog row.
// Deleted or unpublished products still count as existing; documents may
// keep referencing them after the catalog retires them.
func (r *productRepo) MissingIDs(ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := r.db.Model(&model.Product{}).
		Where("product_id IN ?", ids).
		Pluck("product_id", &found).Error
	if err != nil {
		return nil, err
	}
	have := make(map[uint]bool, len(found))
	for _, id := range found {
		have[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !have[id] {
			have[id] = true
			missing = append(missing, id)
		}
	}
	return missing, nil
}

const (
	rawMaterialFilter = `product_id IN (
		SELECT raw_material_id FROM bom_items
		UNION SELECT raw_material_id FROM issue_to_production_items
		UNION SELECT finished_product_id FROM receive_from_production_items
		UNION SELECT product_id FROM stock_voucher_items)`
	finishedFilter = `product_id IN (SELECT DISTINCT product_id FROM bom_master)`
)

func (r *productRepo) Search(params ProductSearch) ([]model.Product, error) {
	q := r.db.Model(&model.Product{}).
		Where("is_deleted = ?", false).
		Where("is_published = ?", true).
		Where("name IS NOT NULL AND TRIM(name) != ''")

	switch params.For {
	case "raw_material":
		q = q.Where(rawMaterialFilter)
	case "finished":
		q = q.Where(finishedFilter)
	}

	if term := strings.TrimSpace(params.Term); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(name) LIKE ? OR CAST(product_id AS TEXT) LIKE ?", like, like)
	}

	var products []model.Product
	err := q.Order("name ASC").Limit(params.Limit).Find(&products).Error
	return products, err
}

// UnitTypes returns the distinct unit types already used by BOM items.
func (r *productRepo) UnitTypes() ([]string, error) {
	var used []string
	err := r.db.Model(&model.BOMItem{}).
		Distinct("unit_type").
		Order("unit_type ASC").
		Pluck("unit_type", &used).Error
	return used, err
}
