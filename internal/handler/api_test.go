package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-pms-backend/internal/model"
	"go-pms-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db,
		testutil.Product(101, "Palm Oil"),
		testutil.Product(102, "Wheat Flour"),
		testutil.Product(200, "Biscuit 200g"),
	)
	app := fiber.New()
	RegisterRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func issuePayload(status string, materialIDs ...uint) map[string]any {
	materials := make([]map[string]any, 0, len(materialIDs))
	for _, id := range materialIDs {
		materials = append(materials, map[string]any{
			"raw_material_id": id,
			"quantity":        "2.5",
			"unit_type":       "KG",
		})
	}
	return map[string]any{"status": status, "materials": materials}
}

func TestCreateIssueEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/issues", issuePayload("DRAFT", 101, 102))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Issue created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "DRAFT", data["status"])
	id := data["issue_id"].(float64)

	code, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/issues/%.0f", id), nil)
	require.Equal(t, http.StatusOK, code)
	detail := body["data"].(map[string]any)
	issue := detail["issue"].(map[string]any)
	assert.Nil(t, issue["issued_at"])
	items := detail["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "Palm Oil", first["raw_material_name"])
	assert.Equal(t, "2.5", first["quantity"])
}

func TestFinalizeIssueTwiceKeepsTimestamp(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/issues", issuePayload("DRAFT", 101))
	id := body["data"].(map[string]any)["issue_id"].(float64)
	path := fmt.Sprintf("/issues/%.0f", id)

	code, _ := doJSON(t, app, http.MethodPut, path, issuePayload("ISSUED", 101))
	require.Equal(t, http.StatusOK, code)

	_, body = doJSON(t, app, http.MethodGet, path, nil)
	stamped := body["data"].(map[string]any)["issue"].(map[string]any)["issued_at"]
	require.NotNil(t, stamped)

	time.Sleep(10 * time.Millisecond)
	code, _ = doJSON(t, app, http.MethodPut, path, issuePayload("ISSUED", 102))
	require.Equal(t, http.StatusOK, code)

	_, body = doJSON(t, app, http.MethodGet, path, nil)
	again := body["data"].(map[string]any)["issue"].(map[string]any)["issued_at"]
	assert.Equal(t, stamped, again)
}

func TestCreateBOMRejectsEmptyItems(t *testing.T) {
	app, db := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/boms", map[string]any{
		"product_id":    200,
		"bom_version":   "v1",
		"status":        "DRAFT",
		"raw_materials": []any{},
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "raw_materials")

	var count int64
	require.NoError(t, db.Model(&model.BOM{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBOMAndFetchDetail(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/boms", map[string]any{
		"product_id":  200,
		"bom_version": "v2",
		"status":      "ACTIVE",
		"raw_materials": []map[string]any{{
			"raw_material_id":   101,
			"quantity_per_unit": "0.750",
			"unit_type":         "KG",
			"wastage_percent":   "2.5",
		}},
	})
	require.Equal(t, http.StatusCreated, code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "v2", data["bom_version"])
	id := data["bom_id"].(float64)

	code, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/boms/%.0f", id), nil)
	require.Equal(t, http.StatusOK, code)
	detail := body["data"].(map[string]any)
	bom := detail["bom"].(map[string]any)
	assert.Equal(t, "Biscuit 200g", bom["product_name"])
	assert.Equal(t, "ACTIVE", bom["status"])
	assert.NotNil(t, bom["activated_at"])
	raw := detail["raw_materials"].([]any)
	require.Len(t, raw, 1)
	item := raw[0].(map[string]any)
	assert.Equal(t, "Palm Oil", item["raw_material_name"])
	assert.Equal(t, "2.5", item["wastage_percent"])
}

func TestVoucherDateDefaultsToToday(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/vouchers", map[string]any{
		"voucher_type": "IN",
		"status":       "DRAFT",
		"items": []map[string]any{{
			"product_id": 101,
			"quantity":   "5",
			"unit_type":  "KG",
		}},
	})
	require.Equal(t, http.StatusCreated, code)
	id := body["data"].(map[string]any)["voucher_id"].(float64)

	_, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/vouchers/%.0f", id), nil)
	voucher := body["data"].(map[string]any)["voucher"].(map[string]any)
	assert.Equal(t, time.Now().Format("2006-01-02"), voucher["voucher_date"])
	assert.Equal(t, "IN", voucher["voucher_type"])
	assert.Nil(t, voucher["posted_at"])
}

func TestDocumentNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/issues/9999", nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Issue not found", body["message"])

	code, body = doJSON(t, app, http.MethodGet, "/vouchers/abc", nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Voucher not found", body["message"])
}

func TestUnknownProductReturnsFieldError(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/issues", issuePayload("DRAFT", 777))
	require.Equal(t, http.StatusUnprocessableEntity, code)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "materials.0.raw_material_id")
}

func TestProductSearchEnvelope(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&model.Issue{Status: "DRAFT"}).Error)
	require.NoError(t, db.Create(&model.IssueItem{IssueID: 1, RawMaterialID: 101, Quantity: decimalFromString(t, "1"), UnitType: "KG"}).Error)

	code, body := doJSON(t, app, http.MethodGet, "/products?for=raw_material&search=oil&limit=5", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "oil", body["search"])
	assert.EqualValues(t, 1, body["count"])
	products := body["data"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Palm Oil", products[0].(map[string]any)["name"])
}

func TestUnitTypesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/unit-types", nil)
	require.Equal(t, http.StatusOK, code)
	types := body["data"].([]any)
	assert.Contains(t, types, "KG")
	assert.Contains(t, types, "PCS")
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	database := body["database"].(map[string]any)
	assert.Equal(t, "up", database["status"])
}

func TestListIssuesProjection(t *testing.T) {
	app, _ := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/issues", issuePayload("DRAFT", 101, 102))
	_, _ = doJSON(t, app, http.MethodPost, "/issues", issuePayload("ISSUED", 102))

	code, body := doJSON(t, app, http.MethodGet, "/issues", nil)
	require.Equal(t, http.StatusOK, code)
	list := body["data"].([]any)
	require.Len(t, list, 2)

	newest := list[0].(map[string]any)
	assert.Equal(t, "ISSUED", newest["status"])
	assert.EqualValues(t, 1, newest["materials_count"])
	assert.Equal(t, "Wheat Flour", newest["materials_preview"])

	oldest := list[1].(map[string]any)
	assert.EqualValues(t, 2, oldest["materials_count"])
	assert.Equal(t, "Palm Oil, Wheat Flour", oldest["materials_preview"])
}
