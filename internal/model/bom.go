package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BOMStatusDraft    = "DRAFT"
	BOMStatusActive   = "ACTIVE"
	BOMStatusInactive = "INACTIVE"
)

// BOM is the recipe for one finished product: which raw materials, how much of
// each per unit produced, and how much wastage to expect.
type BOM struct {
	ID          uint       `gorm:"column:bom_id;primaryKey" json:"bom_id"`
	ProductID   uint       `gorm:"column:product_id;not null" json:"product_id"`
	Product     *Product   `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
	BOMVersion  string     `gorm:"column:bom_version;type:varchar(50);not null" json:"bom_version"`
	Status      string     `gorm:"type:varchar(10);not null;default:DRAFT" json:"status"`
	Remarks     *string    `gorm:"type:text" json:"remarks"`
	ActivatedAt *time.Time `json:"activated_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Items []BOMItem `gorm:"foreignKey:BOMID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (BOM) TableName() string { return "bom_master" }

func (d *BOM) DocID() uint                    { return d.ID }
func (d *BOM) DocStatus() string              { return d.Status }
func (d *BOM) DocFinalizedAt() *time.Time     { return d.ActivatedAt }
func (d *BOM) SetDocFinalizedAt(t *time.Time) { d.ActivatedAt = t }

type BOMItem struct {
	ID              uint             `gorm:"column:bom_item_id;primaryKey" json:"bom_item_id"`
	BOMID           uint             `gorm:"column:bom_id;index;not null" json:"bom_id"`
	RawMaterialID   uint             `gorm:"column:raw_material_id;not null" json:"raw_material_id"`
	RawMaterial     *Product         `gorm:"foreignKey:RawMaterialID;references:ProductID" json:"-"`
	QuantityPerUnit decimal.Decimal  `gorm:"column:quantity_per_unit;type:decimal(10,3);not null" json:"quantity_per_unit"`
	UnitType        string           `gorm:"type:varchar(20);not null" json:"unit_type"`
	WastagePercent  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"wastage_percent"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (BOMItem) TableName() string { return "bom_items" }
