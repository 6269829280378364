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

type IssueHandler struct {
	service service.DocumentService
}

func NewIssueHandler(s service.DocumentService) *IssueHandler {
	return &IssueHandler{service: s}
}

type issueMaterialRequest struct {
	RawMaterialID uint            `json:"raw_material_id" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity" validate:"required,dmin=0.001"`
	UnitType      string          `json:"unit_type" validate:"required,max=20"`
}

type issueRequest struct {
	Status    string                 `json:"status" validate:"required,oneof=DRAFT ISSUED"`
	Remarks   *string                `json:"remarks"`
	Materials []issueMaterialRequest `json:"materials" validate:"required,min=1,dive"`
}

func (r issueRequest) document() *model.Issue {
	return &model.Issue{Status: r.Status, Remarks: r.Remarks}
}

func (r issueRequest) items(issueID uint) any {
	items := make([]model.IssueItem, 0, len(r.Materials))
	for _, m := range r.Materials {
		items = append(items, model.IssueItem{
			IssueID:       issueID,
			RawMaterialID: m.RawMaterialID,
			Quantity:      m.Quantity,
			UnitType:      m.UnitType,
		})
	}
	return &items
}

func (r issueRequest) productRefs() []document.ProductRef {
	refs := make([]document.ProductRef, 0, len(r.Materials))
	for i, m := range r.Materials {
		refs = append(refs, document.ProductRef{
			Field: fmt.Sprintf("materials.%d.raw_material_id", i),
			ID:    m.RawMaterialID,
		})
	}
	return refs
}

type issueSummaryResponse struct {
	IssueID          uint       `json:"issue_id"`
	Status           string     `json:"status"`
	Remarks          *string    `json:"remarks"`
	IssuedAt         *time.Time `json:"issued_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	MaterialsCount   int64      `json:"materials_count"`
	MaterialsPreview string     `json:"materials_preview"`
}

type issueItemResponse struct {
	IssueItemID     uint            `json:"issue_item_id"`
	RawMaterialID   uint            `json:"raw_material_id"`
	RawMaterialName string          `json:"raw_material_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitType        string          `json:"unit_type"`
}

func issueHeaderResponse(h document.HeaderRow) fiber.Map {
	return fiber.Map{
		"issue_id":   h.ID,
		"status":     h.Status,
		"remarks":    h.Remarks,
		"issued_at":  h.FinalizedAt,
		"created_at": h.CreatedAt,
		"updated_at": h.UpdatedAt,
	}
}

func (h *IssueHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.List(document.Issue)
	if err != nil {
		return respondError(c, "list issues", "Failed to fetch issues", err)
	}
	out := make([]issueSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, issueSummaryResponse{
			IssueID:          s.ID,
			Status:           s.Status,
			Remarks:          s.Remarks,
			IssuedAt:         s.FinalizedAt,
			CreatedAt:        s.CreatedAt,
			UpdatedAt:        s.UpdatedAt,
			MaterialsCount:   s.ItemsCount,
			MaterialsPreview: s.ItemsPreview,
		})
	}
	return respondOK(c, out)
}

func (h *IssueHandler) Show(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "fetch issue", "Failed to fetch issue", apperr.NotFound("Issue"))
	}
	detail, err := h.service.Detail(document.Issue, id)
	if err != nil {
		return respondError(c, "fetch issue", "Failed to fetch issue", err)
	}
	items := make([]issueItemResponse, 0, len(detail.Items))
	for _, it := range detail.Items {
		items = append(items, issueItemResponse{
			IssueItemID:     it.ID,
			RawMaterialID:   it.ProductID,
			RawMaterialName: it.ProductName,
			Quantity:        it.Quantity,
			UnitType:        it.UnitType,
		})
	}
	return respondOK(c, fiber.Map{
		"issue": issueHeaderResponse(detail.Header),
		"items": items,
	})
}

func (h *IssueHandler) Create(c *fiber.Ctx) error {
	var req issueRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	id, status, err := h.service.Create(document.Issue, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "create issue", "Failed to create issue", err)
	}
	return respondCreated(c, "Issue created successfully", fiber.Map{
		"issue_id": id,
		"status":   status,
	})
}

func (h *IssueHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, "update issue", "Failed to update issue", apperr.NotFound("Issue"))
	}
	var req issueRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if fields := validator.ValidateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	_, status, err := h.service.Update(document.Issue, id, req.document(), req.items, req.productRefs())
	if err != nil {
		return respondError(c, "update issue", "Failed to update issue", err)
	}
	return respondUpdated(c, "Issue updated successfully", fiber.Map{
		"issue_id": id,
		"status":   status,
	})
}
