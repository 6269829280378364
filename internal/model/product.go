package model

// Product mirrors the legacy catalog table. This service only reads it:
// documents reference products, the search endpoint lists them, nothing here
// ever writes a row.
type Product struct {
	ProductID         uint   `gorm:"column:product_id;primaryKey" json:"product_id"`
	Name              string `gorm:"type:varchar(255)" json:"name"`
	InventoryType     string `gorm:"type:varchar(50)" json:"inventory_type"`
	InventoryUnitType string `gorm:"type:varchar(50)" json:"inventory_unit_type"`
	IsDeleted         bool   `gorm:"not null" json:"is_deleted"`
	IsPublished       bool   `gorm:"not null" json:"is_published"`
}

func (Product) TableName() string { return "product" }
