package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineItem struct {
	RawMaterialID  uint             `json:"raw_material_id" validate:"required"`
	Quantity       decimal.Decimal  `json:"quantity" validate:"required,dmin=0.001"`
	UnitType       string           `json:"unit_type" validate:"required,max=20"`
	WastagePercent *decimal.Decimal `json:"wastage_percent" validate:"omitempty,dmin=0,dmax=100"`
}

type docRequest struct {
	Status    string     `json:"status" validate:"required,oneof=DRAFT ISSUED"`
	Remarks   *string    `json:"remarks"`
	Materials []lineItem `json:"materials" validate:"required,min=1,dive"`
}

func validRequest() docRequest {
	return docRequest{
		Status: "DRAFT",
		Materials: []lineItem{{
			RawMaterialID: 101,
			Quantity:      decimal.NewFromFloat(2.5),
			UnitType:      "KG",
		}},
	}
}

func TestValidRequestPasses(t *testing.T) {
	assert.Nil(t, ValidateStruct(validRequest()))
}

func TestMissingFieldsReportFieldMessages(t *testing.T) {
	fields := ValidateStruct(docRequest{})
	require.NotNil(t, fields)
	assert.Equal(t, []string{"The status field is required."}, fields["status"])
	assert.Equal(t, []string{"The materials field is required."}, fields["materials"])
}

func TestEmptyItemListRejected(t *testing.T) {
	req := validRequest()
	req.Materials = []lineItem{}
	fields := ValidateStruct(req)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"The materials must have at least 1 items."}, fields["materials"])
}

func TestInvalidStatusValue(t *testing.T) {
	req := validRequest()
	req.Status = "SHIPPED"
	fields := ValidateStruct(req)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"The selected status is invalid."}, fields["status"])
}

func TestNestedFieldKeysUseIndexes(t *testing.T) {
	req := validRequest()
	req.Materials = append(req.Materials, lineItem{RawMaterialID: 102, UnitType: "KG"})
	fields := ValidateStruct(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "materials.1.quantity")
}

func TestDecimalMinimum(t *testing.T) {
	req := validRequest()
	req.Materials[0].Quantity = decimal.NewFromFloat(0.0005)
	fields := ValidateStruct(req)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"The materials.0.quantity must be at least 0.001."}, fields["materials.0.quantity"])
}

func TestDecimalMaximumOnPointerField(t *testing.T) {
	over := decimal.NewFromInt(150)
	req := validRequest()
	req.Materials[0].WastagePercent = &over
	fields := ValidateStruct(req)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"The materials.0.wastage_percent may not be greater than 100."}, fields["materials.0.wastage_percent"])

	fine := decimal.NewFromFloat(2.5)
	req.Materials[0].WastagePercent = &fine
	assert.Nil(t, ValidateStruct(req))
}
