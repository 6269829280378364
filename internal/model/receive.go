package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReceiveStatusDraft    = "DRAFT"
	ReceiveStatusReceived = "RECEIVED"
)

// Receive records finished goods coming back from production.
type Receive struct {
	ID         uint       `gorm:"column:id;primaryKey" json:"id"`
	Status     string     `gorm:"type:varchar(10);not null;default:DRAFT" json:"status"`
	Remarks    *string    `gorm:"type:text" json:"remarks"`
	ReceivedAt *time.Time `json:"received_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Items []ReceiveItem `gorm:"foreignKey:ReceiveID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Receive) TableName() string { return "receive_from_production" }

func (d *Receive) DocID() uint                    { return d.ID }
func (d *Receive) DocStatus() string              { return d.Status }
func (d *Receive) DocFinalizedAt() *time.Time     { return d.ReceivedAt }
func (d *Receive) SetDocFinalizedAt(t *time.Time) { d.ReceivedAt = t }

type ReceiveItem struct {
	ID                uint            `gorm:"column:id;primaryKey" json:"id"`
	ReceiveID         uint            `gorm:"column:receive_id;index;not null" json:"receive_id"`
	FinishedProductID uint            `gorm:"column:finished_product_id;not null" json:"finished_product_id"`
	FinishedProduct   *Product        `gorm:"foreignKey:FinishedProductID;references:ProductID" json:"-"`
	Quantity          decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity"`
	UnitType          string          `gorm:"type:varchar(20);not null" json:"unit_type"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (ReceiveItem) TableName() string { return "receive_from_production_items" }
