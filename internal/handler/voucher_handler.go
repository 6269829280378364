package handler

import (
	"fmt"
	"time"

	"go-pms-backend/internal/apperr"
	"go-pms-backend/internal/document"
	"go-pms-backend/internal/model"
	"go-pms-backend/internal/service"
	"go-pms-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type VoucherHandler struct {
	service service.DocumentService
}

func NewVoucherHandler(s service.DocumentService) *VoucherHandler {
	return &VoucherHandler{service: s}
}

type voucherItemRequest struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required,dmin=0.001"`
	UnitType  string          `json:"unit_type" validate:"required,max=20"`
}

type voucherRequest struct {
	VoucherType string               `json:"voucher_type" validate:"required,oneof=IN OUT"`
	VoucherDate string               `json:"voucher_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string               `json:"status" validate:"required,oneof=DRAFT POSTED"`
	Remarks     *string              `json:"remarks"`
	Items       []voucherItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r voucherRequest) document() *model.StockVoucher {
	doc := &model.StockVoucher{
		VoucherType: r.VoucherType,
		Status:      r.Status,
		Remarks:     r.Remarks,
	}
	if r.VoucherDate != "" {
		if d, err := model.ParseDate(r.VoucherDate); err == nil {
			doc.VoucherDate = &d
		}
	}
	return doc
}

func (r voucherRequest) items(voucherID uint) any {
	items := make([]model.StockVoucherItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.StockVoucherItem{
			VoucherID: voucherID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitType:  it.UnitType,
		})
	}
	return &items
}

func (r voucherRequest) productRefs() []document.ProductRef {
	refs := make([]document.ProductRef, 0, len(r.Items))
	for i, it := range r.Items {
		refs = append(refs, document.ProductRef{
			Field: fmt.Sprintf("items.%d.product_id", i),
			ID:    it.ProductID,
		})
	}
	return refs
}

type voucherSummaryResponse struct {
	ID           uint        `json:"id"`
	VoucherType  *string     `json:"voucher_type"`
	VoucherDate  *model.Date `json:"voucher_date"`
	Status       string      `json:"status"`
	Remarks      *string     `json:"remarks"`
	PostedAt     *time.Time  `json:"posted_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	ItemsCount   int64       `json:"items_count"`
	ItemsPreview string      `json:"items_preview"`
}

type voucherItemResponse struct {
	ItemID      uint            `json:"item_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitType    string          `json:"unit_type"`
}

func voucherHeaderResponse(h document.HeaderRow) fiber.Map {
	return fiber.Map{
		"id":           h.ID,
		"voucher_type": h.VoucherType,
		"voucher_date": h.VoucherDate,
		"status":       h.Status,
		"remarks":      h.Remarks,
		"posted_at":    h.FinalizedAt,
		"created_at":   h.CreatedAt,
		"updated_at":   h.UpdatedAt,
	}
}

func (h *VoucherHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.List(document.Voucher)
	if err != nil {
		return respondError(c, "list vouchers", "Failed to fetch vouchers", err)
	}
	out := make([]voucherSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, voucherSummaryResponse{
			ID:           s.ID,
			VoucherType:  s.VoucherType,
			VoucherDate:  s.VoucherDate,
			Status:       s.Status,
			Remarks:      s.Remarks,
			PostedAt:     s.FinalizedAt,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
			ItemsCount:   s.ItemsCount,
			ItemsPreview: s.ItemsPreview,
		})
	}
	return respondOK(c, out)
}

func (h *VoucherHandler) Show(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "fetch voucher", "Failed to fetch voucher", apperr.NotFound("Voucher"))
	}
	detail, err := h.service.Detail(document.Voucher, id)
	if err != nil {
		return respondError(c, "fetch voucher", "Failed to fetch voucher", err)
	}
	items := make([]voucherItemResponse, 0, len(detail.Items))
	for _, it := range detail.Items {
		items = append(items, voucherItemResponse{
			ItemID:      it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitType:    it.UnitType,
		})
	}
	return respondOK(c, fiber.Map{
		"voucher": voucherHeaderResponse(detail.Header),
		"items":   items,
	})
}

func (h *VoucherHandler) Create(c *fiber.Ctx) error {
	var req voucherRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	doc := req.document()
	if doc.VoucherDate == nil {
		today := model.NewDate(time.Now())
		doc.VoucherDate = &today
	}
	id, status, err := h.service.Create(document.Voucher, doc, req.items, req.productRefs())
	if err != nil {
		return respondError(c, "create voucher", "Failed to create voucher", err)
	}
	return respondCreated(c, "Voucher created successfully", fiber.Map{
		"voucher_id": id,
		"status":     status,
	})
}

func (h *VoucherHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "update voucher", "Failed to update voucher", apperr.NotFound("Voucher"))
	}
	var req voucherRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	_, status, err := h.service.Update(document.Voucher, id, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "update voucher", "Failed to update voucher", err)
	}
	return respondUpdated(c, "Voucher updated successfully", fiber.Map{
		"voucher_id": id,
		"status":     status,
	})
}
