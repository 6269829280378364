package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	IssueStatusDraft  = "DRAFT"
	IssueStatusIssued = "ISSUED"
)

// Issue records raw materials handed over to production.
type Issue struct {
	ID        uint       `gorm:"column:issue_id;primaryKey" json:"issue_id"`
	Status    string     `gorm:"type:varchar(10);not null;default:DRAFT" json:"status"`
	Remarks   *string    `gorm:"type:text" json:"remarks"`
	IssuedAt  *time.Time `json:"issued_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Items []IssueItem `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Issue) TableName() string { return "issue_to_production" }

func (d *Issue) DocID() uint                    { return d.ID }
func (d *Issue) DocStatus() string              { return d.Status }
func (d *Issue) DocFinalizedAt() *time.Time     { return d.IssuedAt }
func (d *Issue) SetDocFinalizedAt(t *time.Time) { d.IssuedAt = t }

type IssueItem struct {
	ID            uint            `gorm:"column:issue_item_id;primaryKey" json:"issue_item_id"`
	IssueID       uint            `gorm:"column:issue_id;index;not null" json:"issue_id"`
	RawMaterialID uint            `gorm:"column:raw_material_id;not null" json:"raw_material_id"`
	RawMaterial   *Product        `gorm:"foreignKey:RawMaterialID;references:ProductID" json:"-"`
	Quantity      decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity"`
	UnitType      string          `gorm:"type:varchar(20);not null" json:"unit_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (IssueItem) TableName() string { return "issue_to_production_items" }
