// internal/handlers/handlers_integration_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/config"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/router"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type testEnv struct {
	DB        *gorm.DB
	Router    *gin.Engine
	UploadDir string
}

type envelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Meta    *utils.PaginationMeta `json:"meta"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Product{}))

	uploadDir := t.TempDir()
	cfg := &config.Config{
		Environment: "test",
		Upload: config.UploadConfig{
			Dir:          uploadDir,
			MaxSizeBytes: 5 << 20,
		},
	}

	r, err := router.Initialize(db, cfg)
	require.NoError(t, err)

	return &testEnv{DB: db, Router: r, UploadDir: uploadDir}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (env *testEnv) createOwner(t *testing.T, name string) *models.Owner {
	t.Helper()
	owner := &models.Owner{Name: name, Email: name + "@company.com"}
	require.NoError(t, env.DB.Create(owner).Error)
	return owner
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCreateProduct_DefaultsAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	payload := map[string]interface{}{
		"name":      "Mouse",
		"sku":       "MS-1",
		"price":     19.99,
		"inventory": 50,
		"ownerId":   owner.ID,
	}

	rec, resp := env.doJSON(t, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, resp.Success)

	var created models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, models.ProductStatusDraft, created.Status)
	assert.Equal(t, "MS-1", created.SKU)
	require.NotNil(t, created.Owner)
	assert.Equal(t, owner.ID, created.Owner.ID)

	// Same SKU again conflicts and creates nothing.
	rec, resp = env.doJSON(t, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_SKU", resp.Error.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	rec, resp := env.doJSON(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":    "Mouse",
		"sku":     "not-valid-sku",
		"price":   19.99,
		"ownerId": owner.ID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Details)
}

func TestCreateProduct_UnknownOwner(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.doJSON(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":    "Mouse",
		"sku":     "MS-1",
		"price":   19.99,
		"ownerId": uuid.New(),
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "OWNER_NOT_FOUND", resp.Error.Code)
}

func TestListProducts_StatusFilterAndMeta(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	for i := 0; i < 3; i++ {
		require.NoError(t, env.DB.Create(&models.Product{
			Name: fmt.Sprintf("Active %d", i), SKU: fmt.Sprintf("ACT-%d", i),
			Price: 10, Inventory: 10, Status: models.ProductStatusActive, OwnerID: owner.ID,
		}).Error)
	}
	require.NoError(t, env.DB.Create(&models.Product{
		Name: "Draft", SKU: "DRF-1", Price: 10, Inventory: 10,
		Status: models.ProductStatusDraft, OwnerID: owner.ID,
	}).Error)

	rec, resp := env.doJSON(t, http.MethodGet, "/api/products?status=ACTIVE&page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)

	var products []models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, models.ProductStatusActive, p.Status)
	}

	// Unknown status values are rejected up front.
	rec, resp = env.doJSON(t, http.MethodGet, "/api/products?status=BOGUS", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestListProducts_RejectsMalformedOwnerID(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	require.NoError(t, env.DB.Create(&models.Product{
		Name: "Mouse", SKU: "MS-1", Price: 19.99, Inventory: 50,
		Status: models.ProductStatusActive, OwnerID: owner.ID,
	}).Error)

	// A malformed ownerId must not fall back to an unfiltered list.
	rec, resp := env.doJSON(t, http.MethodGet, "/api/products?ownerId=not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	// A well-formed ownerId with no products still filters.
	rec, resp = env.doJSON(t, http.MethodGet, "/api/products?ownerId="+uuid.New().String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(0), resp.Meta.Total)
}

func TestProductNotFoundPaths(t *testing.T) {
	env := newTestEnv(t)
	missing := uuid.New().String()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/products/" + missing},
		{http.MethodPut, "/api/products/" + missing},
		{http.MethodDelete, "/api/products/" + missing},
	} {
		var body interface{}
		if tc.method == http.MethodPut {
			body = map[string]interface{}{"inventory": 5}
		}
		rec, resp := env.doJSON(t, tc.method, tc.path, body)
		require.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	product := &models.Product{
		Name: "Keyboard", SKU: "KBD-1", Price: 129.99, Inventory: 30,
		Status: models.ProductStatusActive, OwnerID: owner.ID,
	}
	require.NoError(t, env.DB.Create(product).Error)

	rec, resp := env.doJSON(t, http.MethodPut, "/api/products/"+product.ID.String(),
		map[string]interface{}{"inventory": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, 5, updated.Inventory)
	assert.Equal(t, "Keyboard", updated.Name)
	assert.Equal(t, "KBD-1", updated.SKU)
	assert.Equal(t, 129.99, updated.Price)
	assert.Equal(t, models.ProductStatusActive, updated.Status)
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestUpdateProduct_SKUConflict(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	first := &models.Product{Name: "A", SKU: "AAA-1", Price: 1, Status: models.ProductStatusDraft, OwnerID: owner.ID}
	second := &models.Product{Name: "B", SKU: "BBB-2", Price: 1, Status: models.ProductStatusDraft, OwnerID: owner.ID}
	require.NoError(t, env.DB.Create(first).Error)
	require.NoError(t, env.DB.Create(second).Error)

	rec, resp := env.doJSON(t, http.MethodPut, "/api/products/"+second.ID.String(),
		map[string]interface{}{"sku": "AAA-1"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_SKU", resp.Error.Code)

	// Re-submitting its own SKU is not a conflict.
	rec, _ = env.doJSON(t, http.MethodPut, "/api/products/"+second.ID.String(),
		map[string]interface{}{"sku": "BBB-2"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	product := &models.Product{Name: "A", SKU: "AAA-1", Price: 1, Status: models.ProductStatusDraft, OwnerID: owner.ID}
	require.NoError(t, env.DB.Create(product).Error)

	rec, _ := env.doJSON(t, http.MethodDelete, "/api/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	rec, resp := env.doJSON(t, http.MethodDelete, "/api/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
}

func TestOwnersEndpoints(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.createOwner(t, "Sarah Chen")
	env.createOwner(t, "Marcus Johnson")

	require.NoError(t, env.DB.Create(&models.Product{
		Name: "A", SKU: "AAA-1", Price: 1, Status: models.ProductStatusActive, OwnerID: sarah.ID,
	}).Error)

	rec, resp := env.doJSON(t, http.MethodGet, "/api/owners", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var owners []models.Owner
	require.NoError(t, json.Unmarshal(resp.Data, &owners))
	require.Len(t, owners, 2)
	assert.Equal(t, "Marcus Johnson", owners[0].Name)
	assert.Equal(t, int64(0), owners[0].ProductCount)
	assert.Equal(t, "Sarah Chen", owners[1].Name)
	assert.Equal(t, int64(1), owners[1].ProductCount)

	rec, resp = env.doJSON(t, http.MethodGet, "/api/owners/"+sarah.ID.String()+"/products?page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)

	rec, resp = env.doJSON(t, http.MethodGet, "/api/owners/"+uuid.New().String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "OWNER_NOT_FOUND", resp.Error.Code)

	rec, resp = env.doJSON(t, http.MethodGet, "/api/owners/"+uuid.New().String()+"/products", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "OWNER_NOT_FOUND", resp.Error.Code)
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOwner(t, "Sarah Chen")

	statuses := []models.ProductStatus{
		models.ProductStatusActive, models.ProductStatusActive,
		models.ProductStatusDraft, models.ProductStatusArchived,
	}
	for i, status := range statuses {
		require.NoError(t, env.DB.Create(&models.Product{
			Name: fmt.Sprintf("P%d", i), SKU: fmt.Sprintf("STS-%d", i),
			Price: 1, Inventory: i, Status: status, OwnerID: owner.ID,
		}).Error)
	}

	rec, resp := env.doJSON(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Data, &stats))

	assert.JSONEq(t, "4", string(stats["totalProducts"]))
	assert.JSONEq(t, "2", string(stats["activeProducts"]))
	assert.JSONEq(t, "1", string(stats["draftProducts"]))
	assert.JSONEq(t, "1", string(stats["archivedProducts"]))
	assert.JSONEq(t, "4", string(stats["lowInventoryCount"]))
	assert.JSONEq(t, "1", string(stats["ownerCount"]))
}

func uploadRequest(t *testing.T, contentType, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, uploadRequest(t, "image/png", "photo.png", []byte("png-bytes")))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var result map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.NotEmpty(t, result["filename"])
	assert.Equal(t, "/uploads/"+result["filename"], result["url"])

	stored, err := os.ReadFile(env.UploadDir + "/" + result["filename"])
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestUploadImage_RejectsInvalidType(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, uploadRequest(t, "application/pdf", "doc.pdf", []byte("%PDF-")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_FILE_TYPE", resp.Error.Code)

	// Nothing is written for a rejected file.
	entries, err := os.ReadDir(env.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImage_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.doJSON(t, http.MethodPost, "/api/upload", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPLOAD_FAILED", resp.Error.Code)
}
