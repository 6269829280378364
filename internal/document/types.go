package document

import (
	"time"

	"go-pms-backend/internal/model"
)

// BOM: bill of materials for a finished product. ACTIVE is the finalized
// state; INACTIVE retires a BOM without clearing activated_at.
var BOM = &Type{
	Name:  "bom",
	Label: "BOM",

	Table:             "bom_master",
	IDColumn:          "bom_id",
	FinalizedAtColumn: "activated_at",

	ItemsTable:     "bom_items",
	ItemIDColumn:   "bom_item_id",
	ItemFKColumn:   "bom_id",
	ProductColumn:  "raw_material_id",
	QuantityColumn: "quantity_per_unit",

	Statuses:    []string{model.BOMStatusDraft, model.BOMStatusActive, model.BOMStatusInactive},
	FinalStatus: model.BOMStatusActive,

	HasBOMFields: true,
	HasWastage:   true,

	ItemModel: func() any { return &model.BOMItem{} },
	UpdateValues: func(doc Document, _ HeaderRow, finalizedAt *time.Time, now time.Time) map[string]any {
		d := doc.(*model.BOM)
		return map[string]any{
			"product_id":   d.ProductID,
			"bom_version":  d.BOMVersion,
			"status":       d.Status,
			"remarks":      d.Remarks,
			"activated_at": finalizedAt,
			"updated_at":   now,
		}
	},
}

// Issue: raw materials issued to production.
var Issue = &Type{
	Name:  "issue",
	Label: "Issue",

	Table:             "issue_to_production",
	IDColumn:          "issue_id",
	FinalizedAtColumn: "issued_at",

	ItemsTable:     "issue_to_production_items",
	ItemIDColumn:   "issue_item_id",
	ItemFKColumn:   "issue_id",
	ProductColumn:  "raw_material_id",
	QuantityColumn: "quantity",

	Statuses:    []string{model.IssueStatusDraft, model.IssueStatusIssued},
	FinalStatus: model.IssueStatusIssued,

	ItemModel: func() any { return &model.IssueItem{} },
	UpdateValues: func(doc Document, _ HeaderRow, finalizedAt *time.Time, now time.Time) map[string]any {
		d := doc.(*model.Issue)
		return map[string]any{
			"status":     d.Status,
			"remarks":    d.Remarks,
			"issued_at":  finalizedAt,
			"updated_at": now,
		}
	},
}

// Receive: finished goods received from production.
var Receive = &Type{
	Name:  "receive",
	Label: "Receive",

	Table:             "receive_from_production",
	IDColumn:          "id",
	FinalizedAtColumn: "received_at",

	ItemsTable:     "receive_from_production_items",
	ItemIDColumn:   "id",
	ItemFKColumn:   "receive_id",
	ProductColumn:  "finished_product_id",
	QuantityColumn: "quantity",

	Statuses:    []string{model.ReceiveStatusDraft, model.ReceiveStatusReceived},
	FinalStatus: model.ReceiveStatusReceived,

	ItemModel: func() any { return &model.ReceiveItem{} },
	UpdateValues: func(doc Document, _ HeaderRow, finalizedAt *time.Time, now time.Time) map[string]any {
		d := doc.(*model.Receive)
		return map[string]any{
			"status":      d.Status,
			"remarks":     d.Remarks,
			"received_at": finalizedAt,
			"updated_at":  now,
		}
	},
}

// Voucher: generic IN/OUT stock movement. An empty voucher date on update
// falls back to the stored value; it is never cleared.
var Voucher = &Type{
	Name:  "voucher",
	Label: "Voucher",

	Table:             "stock_voucher",
	IDColumn:          "id",
	FinalizedAtColumn: "posted_at",

	ItemsTable:     "stock_voucher_items",
	ItemIDColumn:   "id",
	ItemFKColumn:   "voucher_id",
	ProductColumn:  "product_id",
	QuantityColumn: "quantity",

	Statuses:    []string{model.VoucherStatusDraft, model.VoucherStatusPosted},
	FinalStatus: model.VoucherStatusPosted,

	HasVoucherFields: true,

	ItemModel: func() any { return &model.StockVoucherItem{} },
	UpdateValues: func(doc Document, existing HeaderRow, finalizedAt *time.Time, now time.Time) map[string]any {
		d := doc.(*model.StockVoucher)
		date := d.VoucherDate
		if date == nil {
			date = existing.VoucherDate
		}
		return map[string]any{
			"voucher_type": d.VoucherType,
			"status":       d.Status,
			"voucher_date": date,
			"remarks":      d.Remarks,
			"posted_at":    finalizedAt,
			"updated_at":   now,
		}
	},
}
