// Package document holds the generic header/line-item machinery shared by the
// four document resources (BOM, issue, receive, stock voucher). Each resource
// is described by a Type value; one repository and one service consume those
// descriptors instead of reimplementing the same CRUD four times.
package document

import (
	"time"

	"go-pms-backend/internal/model"

	"github.com/shopspring/decimal"
)

// Document is the minimal surface the upsert service needs from a concrete
// header model.
type Document interface {
	DocID() uint
	DocStatus() string
	DocFinalizedAt() *time.Time
	SetDocFinalizedAt(*time.Time)
}

// ProductRef ties a submitted product id to the request field it came from,
// so existence failures are reported against the right field.
type ProductRef struct {
	Field string
	ID    uint
}

// HeaderRow is the read-side projection of any document header. Voucher and
// BOM extras stay nil for the other types.
type HeaderRow struct {
	ID          uint       `gorm:"column:id"`
	Status      string     `gorm:"column:status"`
	Remarks     *string    `gorm:"column:remarks"`
	FinalizedAt *time.Time `gorm:"column:finalized_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`

	VoucherType *string     `gorm:"column:voucher_type"`
	VoucherDate *model.Date `gorm:"column:voucher_date"`

	ProductID   *uint   `gorm:"column:product_id"`
	ProductName *string `gorm:"column:product_name"`
	BOMVersion  *string `gorm:"column:bom_version"`
}

// ItemRow is the read-side projection of any line item, with the product name
// already resolved. Quantity is aliased from the type's quantity column.
type ItemRow struct {
	ID             uint             `gorm:"column:id"`
	ProductID      uint             `gorm:"column:product_id"`
	ProductName    string           `gorm:"column:product_name"`
	Quantity       decimal.Decimal  `gorm:"column:quantity"`
	UnitType       string           `gorm:"column:unit_type"`
	WastagePercent *decimal.Decimal `gorm:"column:wastage_percent"`
}

// Summary is a listing row: the header plus item count and a preview built
// from the first three product names (item id order).
type Summary struct {
	HeaderRow
	ItemsCount   int64
	ItemsPreview string
}

// Detail is a header with its full item list.
type Detail struct {
	Header HeaderRow
	Items  []ItemRow
}
