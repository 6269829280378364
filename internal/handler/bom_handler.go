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

type BOMHandler struct {
	service service.DocumentService
}

func NewBOMHandler(s service.DocumentService) *BOMHandler {
	return &BOMHandler{service: s}
}

type bomItemRequest struct {
	RawMaterialID   uint             `json:"raw_material_id" validate:"required"`
	QuantityPerUnit decimal.Decimal  `json:"quantity_per_unit" validate:"required,dmin=0.001"`
	UnitType        string           `json:"unit_type" validate:"required,max=20"`
	WastagePercent  *decimal.Decimal `json:"wastage_percent" validate:"omitempty,dmin=0,dmax=100"`
}

type bomRequest struct {
	ProductID    uint             `json:"product_id" validate:"required"`
	BOMVersion   string           `json:"bom_version" validate:"required,max=50"`
	Status       string           `json:"status" validate:"required,oneof=DRAFT ACTIVE INACTIVE"`
	Remarks      *string          `json:"remarks"`
	RawMaterials []bomItemRequest `json:"raw_materials" validate:"required,min=1,dive"`
}

func (r bomRequest) document() *model.BOM {
	return &model.BOM{
		ProductID:  r.ProductID,
		BOMVersion: r.BOMVersion,
		Status:     r.Status,
		Remarks:    r.Remarks,
	}
}

func (r bomRequest) items(bomID uint) any {
	items := make([]model.BOMItem, 0, len(r.RawMaterials))
	for _, it := range r.RawMaterials {
		items = append(items, model.BOMItem{
			BOMID:           bomID,
			RawMaterialID:   it.RawMaterialID,
			QuantityPerUnit: it.QuantityPerUnit,
			UnitType:        it.UnitType,
			WastagePercent:  it.WastagePercent,
		})
	}
	return &items
}

func (r bomRequest) productRefs() []document.ProductRef {
	refs := make([]document.ProductRef, 0, len(r.RawMaterials)+1)
	refs = append(refs, document.ProductRef{Field: "product_id", ID: r.ProductID})
	for i, it := range r.RawMaterials {
		refs = append(refs, document.ProductRef{
			Field: fmt.Sprintf("raw_materials.%d.raw_material_id", i),
			ID:    it.RawMaterialID,
		})
	}
	return refs
}

type bomSummaryResponse struct {
	BOMID        uint       `json:"bom_id"`
	ProductID    *uint      `json:"product_id"`
	ProductName  *string    `json:"product_name"`
	BOMVersion   *string    `json:"bom_version"`
	Status       string     `json:"status"`
	Remarks      *string    `json:"remarks"`
	ActivatedAt  *time.Time `json:"activated_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ItemsCount   int64      `json:"items_count"`
	ItemsPreview string     `json:"items_preview"`
}

type bomItemResponse struct {
	BOMItemID       uint             `json:"bom_item_id"`
	RawMaterialID   uint             `json:"raw_material_id"`
	RawMaterialName string           `json:"raw_material_name"`
	QuantityPerUnit decimal.Decimal  `json:"quantity_per_unit"`
	UnitType        string           `json:"unit_type"`
	WastagePercent  *decimal.Decimal `json:"wastage_percent"`
}

func bomHeaderResponse(h document.HeaderRow) fiber.Map {
	return fiber.Map{
		"bom_id":       h.ID,
		"product_id":   h.ProductID,
		"product_name": h.ProductName,
		"bom_version":  h.BOMVersion,
		"status":       h.Status,
		"remarks":      h.Remarks,
		"activated_at": h.FinalizedAt,
		"created_at":   h.CreatedAt,
		"updated_at":   h.UpdatedAt,
	}
}

func (h *BOMHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.List(document.BOM)
	if err != nil {
		return respondError(c, "list boms", "Failed to fetch BOMs", err)
	}
	out := make([]bomSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, bomSummaryResponse{
			BOMID:        s.ID,
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			BOMVersion:   s.BOMVersion,
			Status:       s.Status,
			Remarks:      s.Remarks,
			ActivatedAt:  s.FinalizedAt,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
			ItemsCount:   s.ItemsCount,
			ItemsPreview: s.ItemsPreview,
		})
	}
	return respondOK(c, out)
}

func (h *BOMHandler) Show(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "fetch bom", "Failed to fetch BOM", apperr.NotFound("BOM"))
	}
	detail, err := h.service.Detail(document.BOM, id)
	if err != nil {
		return respondError(c, "fetch bom", "Failed to fetch BOM", err)
	}
	items := make([]bomItemResponse, 0, len(detail.Items))
	for _, it := range detail.Items {
		items = append(items, bomItemResponse{
			BOMItemID:       it.ID,
			RawMaterialID:   it.ProductID,
			RawMaterialName: it.ProductName,
			QuantityPerUnit: it.Quantity,
			UnitType:        it.UnitType,
			WastagePercent:  it.WastagePercent,
		})
	}
	return respondOK(c, fiber.Map{
		"bom":           bomHeaderResponse(detail.Header),
		"raw_materials": items,
	})
}

func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var req bomRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	id, status, err := h.service.Create(document.BOM, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "create bom", "Failed to create BOM", err)
	}
	return respondCreated(c, "BOM created successfully", fiber.Map{
		"bom_id":      id,
		"bom_version": req.BOMVersion,
		"status":      status,
	})
}

func (h *BOMHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "update bom", "Failed to update BOM", apperr.NotFound("BOM"))
	}
	var req bomRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	_, status, err := h.service.Update(document.BOM, id, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "update bom", "Failed to update BOM", err)
	}
	return respondUpdated(c, "BOM updated successfully", fiber.Map{
		"bom_id":      id,
		"bom_version": req.BOMVersion,
		"status":      status,
	})
}
