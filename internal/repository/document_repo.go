package repository

import (
	"strings"

	"go-pms-backend/internal/document"

	"gorm.io/gorm"
)

// ItemStat is one header's aggregate over its line items.
type ItemStat struct {
	Count   int64
	Preview string
}

// DocumentRepository is the descriptor-driven data access shared by all four
// document types. Write methods take the caller's transaction handle so a
// header and its items commit or roll back together.
type DocumentRepository interface {
	ListHeaders(cfg *document.Type) ([]document.HeaderRow, error)
	ItemStats(cfg *document.Type) (map[uint]ItemStat, error)
	FindHeader(cfg *document.Type, id uint) (*document.HeaderRow, error)
	ItemsFor(cfg *document.Type, headerID uint) ([]document.ItemRow, error)

	CreateHeader(tx *gorm.DB, doc document.Document) error
	UpdateHeader(tx *gorm.DB, cfg *document.Type, id uint, values map[string]any) error
	DeleteItems(tx *gorm.DB, cfg *document.Type, headerID uint) error
	InsertItems(tx *gorm.DB, items any) error
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db}
}

// headerQuery aliases per-type columns (issue_id, issued_at, ...) onto the
// generic HeaderRow projection.
func (r *documentRepo) headerQuery(cfg *document.Type) *gorm.DB {
	t := cfg.Table
	cols := []string{
		t + "." + cfg.IDColumn + " AS id",
		t + ".status AS status",
		t + ".remarks AS remarks",
		t + "." + cfg.FinalizedAtColumn + " AS finalized_at",
		t + ".created_at AS created_at",
		t + ".updated_at AS updated_at",
	}
	if cfg.HasVoucherFields {
		cols = append(cols, t+".voucher_type AS voucher_type", t+".voucher_date AS voucher_date")
	}
	q := r.db.Table(t).Select(strings.Join(cols, ", "))
	if cfg.HasBOMFields {
		q = q.Select(strings.Join(append(cols,
			t+".product_id AS product_id",
			"p.name AS product_name",
			t+".bom_version AS bom_version",
		), ", ")).
			Joins("LEFT JOIN product p ON p.product_id = " + t + ".product_id")
	}
	return q
}

func (r *documentRepo) ListHeaders(cfg *document.Type) ([]document.HeaderRow, error) {
	var rows []document.HeaderRow
	err := r.headerQuery(cfg).
		Order(cfg.Table + ".created_at DESC, " + cfg.Table + "." + cfg.IDColumn + " DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *documentRepo) FindHeader(cfg *document.Type, id uint) (*document.HeaderRow, error) {
	var row document.HeaderRow
	res := r.headerQuery(cfg).
		Where(cfg.Table+"."+cfg.IDColumn+" = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// ItemStats aggregates item count and a first-3-names preview per header in a
// single query, ordered by item id so the preview is deterministic.
func (r *documentRepo) ItemStats(cfg *document.Type) (map[uint]ItemStat, error) {
	type nameRow struct {
		HeaderID uint   `gorm:"column:header_id"`
		Name     string `gorm:"column:name"`
	}
	var rows []nameRow
	err := r.db.Table(cfg.ItemsTable+" AS i").
		Select("i."+cfg.ItemFKColumn+" AS header_id, p.name AS name").
		Joins("JOIN product p ON p.product_id = i."+cfg.ProductColumn).
		Order("i." + cfg.ItemIDColumn + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := make(map[uint]ItemStat, len(rows))
	for _, row := range rows {
		s := stats[row.HeaderID]
		s.Count++
		if s.Count <= 3 {
			if s.Preview != "" {
				s.Preview += ", "
			}
			s.Preview += row.Name
		}
		stats[row.HeaderID] = s
	}
	return stats, nil
}

func (r *documentRepo) ItemsFor(cfg *document.Type, headerID uint) ([]document.ItemRow, error) {
	sel := "i." + cfg.ItemIDColumn + " AS id" +
		", i." + cfg.ProductColumn + " AS product_id" +
		", p.name AS product_name" +
		", i." + cfg.QuantityColumn + " AS quantity" +
		", i.unit_type AS unit_type"
	if cfg.HasWastage {
		sel += ", i.wastage_percent AS wastage_percent"
	}
	var items []document.ItemRow
	err := r.db.Table(cfg.ItemsTable+" AS i").
		Select(sel).
		Joins("JOIN product p ON p.product_id = i."+cfg.ProductColumn).
		Where("i."+cfg.ItemFKColumn+" = ?", headerID).
		Order("i." + cfg.ItemIDColumn + " ASC").
		Scan(&items).Error
	return items, err
}

func (r *documentRepo) CreateHeader(tx *gorm.DB, doc document.Document) error {
	return tx.Create(doc).Error
}

func (r *documentRepo) UpdateHeader(tx *gorm.DB, cfg *document.Type, id uint, values map[string]any) error {
	return tx.Table(cfg.Table).Where(cfg.IDColumn+" = ?", id).Updates(values).Error
}

func (r *documentRepo) DeleteItems(tx *gorm.DB, cfg *document.Type, headerID uint) error {
	return tx.Where(cfg.ItemFKColumn+" = ?", headerID).Delete(cfg.ItemModel()).Error
}

func (r *documentRepo) InsertItems(tx *gorm.DB, items any) error {
	return tx.Create(items).Error
}
