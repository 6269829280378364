package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	VoucherTypeIn  = "IN"
	VoucherTypeOut = "OUT"

	VoucherStatusDraft  = "DRAFT"
	VoucherStatusPosted = "POSTED"
)

// StockVoucher records a generic stock movement (IN or OUT) outside the
// issue/receive flows.
type StockVoucher struct {
	ID          uint       `gorm:"column:id;primaryKey" json:"id"`
	VoucherType string     `gorm:"type:varchar(5);not null;default:IN" json:"voucher_type"`
	Status      string     `gorm:"type:varchar(10);not null;default:DRAFT" json:"status"`
	VoucherDate *Date      `gorm:"type:date" json:"voucher_date"`
	Remarks     *string    `gorm:"type:text" json:"remarks"`
	PostedAt    *time.Time `json:"posted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Items []StockVoucherItem `gorm:"foreignKey:VoucherID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (StockVoucher) TableName() string { return "stock_voucher" }

func (d *StockVoucher) DocID() uint                    { return d.ID }
func (d *StockVoucher) DocStatus() string              { return d.Status }
func (d *StockVoucher) DocFinalizedAt() *time.Time     { return d.PostedAt }
func (d *StockVoucher) SetDocFinalizedAt(t *time.Time) { d.PostedAt = t }

type StockVoucherItem struct {
	ID        uint            `gorm:"column:id;primaryKey" json:"id"`
	VoucherID uint            `gorm:"column:voucher_id;index;not null" json:"voucher_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity"`
	UnitType  string          `gorm:"type:varchar(20);not null" json:"unit_type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (StockVoucherItem) TableName() string { return "stock_voucher_items" }
