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

type ReceiveHandler struct {
	service service.DocumentService
}

func NewReceiveHandler(s service.DocumentService) *ReceiveHandler {
	return &ReceiveHandler{service: s}
}

type receiveItemRequest struct {
	FinishedProductID uint            `json:"finished_product_id" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity" validate:"required,dmin=0.001"`
	UnitType          string          `json:"unit_type" validate:"required,max=20"`
}

type receiveRequest struct {
	Status  string               `json:"status" validate:"required,oneof=DRAFT RECEIVED"`
	Remarks *string              `json:"remarks"`
	Items   []receiveItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r receiveRequest) document() *model.Receive {
	return &model.Receive{Status: r.Status, Remarks: r.Remarks}
}

func (r receiveRequest) items(receiveID uint) any {
	items := make([]model.ReceiveItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.ReceiveItem{
			ReceiveID:         receiveID,
			FinishedProductID: it.FinishedProductID,
			Quantity:          it.Quantity,
			UnitType:          it.UnitType,
		})
	}
	return &items
}

func (r receiveRequest) productRefs() []document.ProductRef {
	refs := make([]document.ProductRef, 0, len(r.Items))
	for i, it := range r.Items {
		refs = append(refs, document.ProductRef{
			Field: fmt.Sprintf("items.%d.finished_product_id", i),
			ID:    it.FinishedProductID,
		})
	}
	return refs
}

type receiveSummaryResponse struct {
	ID           uint       `json:"id"`
	Status       string     `json:"status"`
	Remarks      *string    `json:"remarks"`
	ReceivedAt   *time.Time `json:"received_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ItemsCount   int64      `json:"items_count"`
	ItemsPreview string     `json:"items_preview"`
}

type receiveItemResponse struct {
	ItemID              uint            `json:"item_id"`
	FinishedProductID   uint            `json:"finished_product_id"`
	FinishedProductName string          `json:"finished_product_name"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitType            string          `json:"unit_type"`
}

func receiveHeaderResponse(h document.HeaderRow) fiber.Map {
	return fiber.Map{
		"id":          h.ID,
		"status":      h.Status,
		"remarks":     h.Remarks,
		"received_at": h.FinalizedAt,
		"created_at":  h.CreatedAt,
		"updated_at":  h.UpdatedAt,
	}
}

func (h *ReceiveHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.List(document.Receive)
	if err != nil {
		return respondError(c, "list receives", "Failed to fetch receives", err)
	}
	out := make([]receiveSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, receiveSummaryResponse{
			ID:           s.ID,
			Status:       s.Status,
			Remarks:      s.Remarks,
			ReceivedAt:   s.FinalizedAt,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
			ItemsCount:   s.ItemsCount,
			ItemsPreview: s.ItemsPreview,
		})
	}
	return respondOK(c, out)
}

func (h *ReceiveHandler) Show(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "fetch receive", "Failed to fetch receive", apperr.NotFound("Receive"))
	}
	detail, err := h.service.Detail(document.Receive, id)
	if err != nil {
		return respondError(c, "fetch receive", "Failed to fetch receive", err)
	}
	items := make([]receiveItemResponse, 0, len(detail.Items))
	for _, it := range detail.Items {
		items = append(items, receiveItemResponse{
			ItemID:              it.ID,
			FinishedProductID:   it.ProductID,
			FinishedProductName: it.ProductName,
			Quantity:            it.Quantity,
			UnitType:            it.UnitType,
		})
	}
	return respondOK(c, fiber.Map{
		"receive": receiveHeaderResponse(detail.Header),
		"items":   items,
	})
}

func (h *ReceiveHandler) Create(c *fiber.Ctx) error {
	var req receiveRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	id, status, err := h.service.Create(document.Receive, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "create receive", "Failed to create receive", err)
	}
	return respondCreated(c, "Receive created successfully", fiber.Map{
		"receive_id": id,
		"status":     status,
	})
}

func (h *ReceiveHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "update receive", "Failed to update receive", apperr.NotFound("Receive"))
	}
	var req receiveRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	_, status, err := h.service.Update(document.Receive, id, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "update receive", "Failed to update receive", err)
	}
	return respondUpdated(c, "Receive updated successfully", fiber.Map{
		"receive_id": id,
		"status":     status,
	})
}
