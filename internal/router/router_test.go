package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/config"
	"github.com/javajoker/retail-backend/internal/database"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/router"
	"github.com/javajoker/retail-backend/internal/services"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-secret"
)

type image struct {
	field, filename, contentType string
}

var pngImage = image{"image1", "shirt.png", "image/png"}

type APITestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	cleanup    func()
	uploadDir  string
	adminToken string
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.ErrorLevel)
}

func (suite *APITestSuite) SetupTest() {
	db, err := database.Initialize(config.DatabaseConfig{
		Driver:       "sqlite",
		Database:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))
	suite.Require().NoError(database.SeedInitialData(db, config.AdminConfig{Email: adminEmail, Password: adminPassword}))

	suite.db = db
	suite.uploadDir = suite.T().TempDir()

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Upload: config.UploadConfig{
			Dir:         suite.uploadDir,
			PublicPath:  "/uploads",
			MaxFileSize: 1 << 20,
			MaxBodySize: 6 << 20,
		},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{UploadBurst: 100, AuthBurst: 100},
	}
	storage := services.NewStorageServiceWithBackend(services.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath))
	suite.router, suite.cleanup = router.New(db, cfg, storage)

	suite.adminToken = suite.login(adminEmail, adminPassword)
}

func (suite *APITestSuite) TearDownTest() {
	suite.cleanup()
	database.Close(suite.db)
}

func (suite *APITestSuite) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) jsonRequest(method, target string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return suite.do(req, token)
}

func (suite *APITestSuite) productForm(fields map[string]string, images ...image) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		suite.Require().NoError(writer.WriteField(name, value))
	}
	for _, img := range images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, img.field, img.filename))
		header.Set("Content-Type", img.contentType)
		part, err := writer.CreatePart(header)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return suite.do(req, "")
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

func (suite *APITestSuite) data(w *httptest.ResponseRecorder) map[string]interface{} {
	data, ok := suite.decode(w)["data"].(map[string]interface{})
	suite.Require().True(ok, w.Body.String())
	return data
}

func (suite *APITestSuite) login(email, password string) string {
	w := suite.jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return suite.data(w)["accessToken"].(string)
}

func (suite *APITestSuite) register(name, email string) (uint, string) {
	w := suite.jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	data := suite.data(w)
	user := data["user"].(map[string]interface{})
	return uint(user["id"].(float64)), data["accessToken"].(string)
}

// seedCatalog creates category 1 and subcategory 1 through the API.
func (suite *APITestSuite) seedCatalog() {
	w := suite.jsonRequest(http.MethodPost, "/api/categories", map[string]string{"name": "Clothing"}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	w = suite.jsonRequest(http.MethodPost, "/api/subcategories", map[string]interface{}{"name": "Shirts", "categoryID": 1}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func shirtFields() map[string]string {
	return map[string]string{
		"productName":   "Shirt",
		"categoryID":    "1",
		"subCategoryID": "1",
		"purchasePrice": "10.5",
		"sellingPrice":  "19.99",
		"stock":         "5",
	}
}

func (suite *APITestSuite) createShirt() uint {
	w := suite.productForm(shirtFields(), pngImage)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return uint(suite.data(w)["id"].(float64))
}

func (suite *APITestSuite) uploadedFiles() []string {
	entries, err := os.ReadDir(suite.uploadDir)
	suite.Require().NoError(err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func (suite *APITestSuite) TestHealth() {
	w := suite.jsonRequest(http.MethodGet, "/health", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "healthy", suite.decode(w)["status"])
}

func (suite *APITestSuite) TestCreateProduct() {
	suite.seedCatalog()

	w := suite.productForm(shirtFields(), pngImage)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	response := suite.decode(w)
	assert.Equal(suite.T(), "success", response["status"])
	assert.Equal(suite.T(), "Product added successfully!", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Shirt", data["productName"])
	assert.Equal(suite.T(), 10.5, data["purchasePrice"])
	assert.Equal(suite.T(), 19.99, data["sellingPrice"])
	assert.Equal(suite.T(), float64(5), data["stock"])
	assert.Equal(suite.T(), "active", data["status"])
	assert.Nil(suite.T(), data["image2"])
	assert.Equal(suite.T(), "Clothing", data["category"].(map[string]interface{})["name"])

	image1, ok := data["image1"].(string)
	suite.Require().True(ok)
	assert.Regexp(suite.T(), `^/uploads/image1-\d+\.png$`, image1)
	assert.Equal(suite.T(), []string{path.Base(image1)}, suite.uploadedFiles())

	served := suite.do(httptest.NewRequest(http.MethodGet, image1, nil), "")
	assert.Equal(suite.T(), http.StatusOK, served.Code)

	// Round trip
	w = suite.jsonRequest(http.MethodGet, fmt.Sprintf("/api/products/%v", data["id"]), nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	fetched := suite.data(w)
	assert.Equal(suite.T(), "Shirt", fetched["productName"])
	assert.Equal(suite.T(), 10.5, fetched["purchasePrice"])
	assert.Equal(suite.T(), float64(5), fetched["stock"])
	assert.Equal(suite.T(), image1, fetched["image1"])
}

func (suite *APITestSuite) TestCreateProductRejectsInvalidInput() {
	suite.seedCatalog()

	for _, field := range []string{"productName", "categoryID", "subCategoryID", "purchasePrice", "sellingPrice", "stock"} {
		fields := shirtFields()
		delete(fields, field)

		w := suite.productForm(fields, pngImage)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, field)
	}

	w := suite.productForm(shirtFields())
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Upload at least 1 image.", suite.decode(w)["message"])

	w = suite.productForm(shirtFields(), image{"image1", "anim.gif", "image/gif"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Only JPG and PNG files are allowed!", suite.decode(w)["message"])

	w = suite.productForm(shirtFields(), pngImage, image{"image2", "anim.png", "image/gif"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.productForm(shirtFields(), image{"photo", "shirt.png", "image/png"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	fields := shirtFields()
	fields["stock"] = "five"
	w = suite.productForm(fields, pngImage)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
	assert.Empty(suite.T(), suite.uploadedFiles())
}

func (suite *APITestSuite) TestCreateProductUnknownCategory() {
	suite.seedCatalog()

	fields := shirtFields()
	fields["categoryID"] = "999"
	w := suite.productForm(fields, pngImage)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "CONFLICT", suite.decode(w)["error"].(map[string]interface{})["code"])
	assert.Empty(suite.T(), suite.uploadedFiles())
}

func (suite *APITestSuite) TestListProducts() {
	suite.seedCatalog()
	for i := 0; i < 3; i++ {
		suite.createShirt()
	}

	w := suite.jsonRequest(http.MethodGet, "/api/products", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), float64(3), response["results"])
	products := response["data"].([]interface{})
	suite.Require().Len(products, 3)
	for _, p := range products {
		product := p.(map[string]interface{})
		assert.Equal(suite.T(), "Clothing", product["category"].(map[string]interface{})["name"])
		assert.Equal(suite.T(), "Shirts", product["subCategory"].(map[string]interface{})["name"])
	}
}

func (suite *APITestSuite) TestListProductsEmpty() {
	w := suite.jsonRequest(http.MethodGet, "/api/products", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"status":"success","results":0,"data":[]}`, w.Body.String())
}

func (suite *APITestSuite) TestGetProduct() {
	w := suite.jsonRequest(http.MethodGet, "/api/products/abc", nil, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid product ID.", suite.decode(w)["message"])

	for _, id := range []string{"0", "-1"} {
		w = suite.jsonRequest(http.MethodGet, "/api/products/"+id, nil, "")
		assert.Equal(suite.T(), http.StatusNotFound, w.Code, id)

		w = suite.jsonRequest(http.MethodDelete, "/api/products/"+id, nil, "")
		assert.Equal(suite.T(), http.StatusNotFound, w.Code, id)
	}

	w = suite.jsonRequest(http.MethodGet, "/api/products/999", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "NOT_FOUND", suite.decode(w)["error"].(map[string]interface{})["code"])
}

func (suite *APITestSuite) TestUpdateProduct() {
	suite.seedCatalog()
	id := suite.createShirt()
	target := fmt.Sprintf("/api/products/%d", id)

	w := suite.jsonRequest(http.MethodPatch, target, map[string]interface{}{"productName": "Linen Shirt", "sellingPrice": 24.5}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	data := suite.data(w)
	assert.Equal(suite.T(), "Linen Shirt", data["productName"])
	assert.Equal(suite.T(), 24.5, data["sellingPrice"])
	assert.Equal(suite.T(), 10.5, data["purchasePrice"])

	w = suite.jsonRequest(http.MethodPut, target, map[string]interface{}{"colour": "red"}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodPatch, target, map[string]interface{}{"stock": "lots"}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodPatch, target, map[string]interface{}{"status": "archived"}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodPatch, target, map[string]interface{}{}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	rejected := []struct {
		payload map[string]interface{}
		field   string
		tag     string
	}{
		{map[string]interface{}{"productName": "   "}, "productName", "notblank"},
		{map[string]interface{}{"stock": -1}, "stock", "gte"},
		{map[string]interface{}{"purchasePrice": -0.01}, "purchasePrice", "gte"},
	}
	for _, tc := range rejected {
		w = suite.jsonRequest(http.MethodPatch, target, tc.payload, "")
		suite.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())
		details := suite.decode(w)["error"].(map[string]interface{})["details"].([]interface{})
		suite.Require().Len(details, 1)
		detail := details[0].(map[string]interface{})
		assert.Equal(suite.T(), tc.field, detail["field"])
		assert.Equal(suite.T(), tc.tag, detail["tag"])
	}

	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(`{"stock":3} {"bogus":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.do(req, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodGet, target, nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	data = suite.data(w)
	assert.Equal(suite.T(), "Linen Shirt", data["productName"])
	assert.Equal(suite.T(), float64(5), data["stock"])
	assert.Equal(suite.T(), 10.5, data["purchasePrice"])

	w = suite.jsonRequest(http.MethodPatch, target, map[string]interface{}{"categoryID": 999}, "")
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.jsonRequest(http.MethodPatch, "/api/products/999", map[string]interface{}{"stock": 1}, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestDeleteProductTwice() {
	suite.seedCatalog()
	id := suite.createShirt()
	suite.Require().Len(suite.uploadedFiles(), 1)
	target := fmt.Sprintf("/api/products/%d", id)

	w := suite.jsonRequest(http.MethodDelete, target, nil, "")
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())
	assert.Empty(suite.T(), suite.uploadedFiles())

	w = suite.jsonRequest(http.MethodDelete, target, nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCatalogWritesRequireAdmin() {
	_, customerToken := suite.register("Casey", "casey@example.com")
	payload := map[string]string{"name": "Footwear"}

	w := suite.jsonRequest(http.MethodPost, "/api/categories", payload, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/categories", payload, customerToken)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/categories", payload, suite.adminToken)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "Category created successfully.", suite.decode(w)["message"])

	w = suite.jsonRequest(http.MethodPost, "/api/categories", payload, suite.adminToken)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.jsonRequest(http.MethodGet, "/api/categories", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), suite.decode(w)["results"])

	w = suite.jsonRequest(http.MethodGet, "/api/categories/abc", nil, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid Category ID.", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestCatalogLifecycle() {
	suite.seedCatalog()
	suite.createShirt()

	w := suite.jsonRequest(http.MethodPost, "/api/colors", map[string]string{"name": "Navy", "hexCode": "#1a2b3c"}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(suite.T(), "#1A2B3C", suite.data(w)["hexCode"])

	w = suite.jsonRequest(http.MethodPost, "/api/colors", map[string]string{"name": "Red", "hexCode": "red"}, suite.adminToken)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodPut, "/api/brands/1", map[string]string{"name": "Acme"}, suite.adminToken)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Brand not found.", suite.decode(w)["message"])

	w = suite.jsonRequest(http.MethodPost, "/api/sizes", map[string]string{"name": "XL"}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)
	w = suite.jsonRequest(http.MethodPatch, "/api/sizes/1", map[string]string{"name": "XXL"}, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "XXL", suite.data(w)["name"])
	w = suite.jsonRequest(http.MethodDelete, "/api/sizes/1", nil, suite.adminToken)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = suite.jsonRequest(http.MethodGet, "/api/subcategories/1", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Clothing", suite.data(w)["category"].(map[string]interface{})["name"])

	// Still referenced by the product and the subcategory
	w = suite.jsonRequest(http.MethodDelete, "/api/categories/1", nil, suite.adminToken)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestAuthentication() {
	suite.register("Ada", "ada@example.com")

	w := suite.jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Ada Again", "email": "ADA@example.com", "password": "secret123",
	}, "")
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Bob", "email": "not-an-email", "password": "secret123",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "wrong"}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	token := suite.login("ada@example.com", "secret123")

	w = suite.jsonRequest(http.MethodGet, "/api/auth/me", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	profile := suite.data(w)
	assert.Equal(suite.T(), "ada@example.com", profile["email"])
	assert.NotContains(suite.T(), profile, "passwordHash")

	w = suite.jsonRequest(http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestOrders() {
	suite.seedCatalog()
	productID := suite.createShirt()
	_, customerToken := suite.register("Casey", "casey@example.com")
	_, otherToken := suite.register("Olive", "olive@example.com")

	order := map[string]interface{}{
		"items":           []map[string]interface{}{{"productID": productID, "quantity": 2}},
		"shippingAddress": "1 Main Street",
	}

	w := suite.jsonRequest(http.MethodPost, "/api/orders", order, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/orders", order, customerToken)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	created := suite.data(w)
	assert.Equal(suite.T(), "pending", created["status"])
	assert.Equal(suite.T(), 39.98, created["totalAmount"])
	orderPath := fmt.Sprintf("/api/orders/%v", created["id"])

	tooMany := map[string]interface{}{
		"items":           []map[string]interface{}{{"productID": productID, "quantity": 4}},
		"shippingAddress": "1 Main Street",
	}
	w = suite.jsonRequest(http.MethodPost, "/api/orders", tooMany, customerToken)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.jsonRequest(http.MethodGet, "/api/orders", nil, customerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), suite.decode(w)["results"])
	assert.Equal(suite.T(), "1", w.Header().Get("X-Total-Count"))

	w = suite.jsonRequest(http.MethodGet, orderPath, nil, otherToken)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.jsonRequest(http.MethodPatch, orderPath+"/status", map[string]string{"status": "processing"}, customerToken)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.jsonRequest(http.MethodPost, orderPath+"/cancel", nil, customerToken)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	assert.Equal(suite.T(), "cancelled", suite.data(w)["status"])

	w = suite.jsonRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", productID), nil, "")
	assert.Equal(suite.T(), float64(5), suite.data(w)["stock"])

	w = suite.jsonRequest(http.MethodPatch, orderPath+"/status", map[string]string{"status": "processing"}, suite.adminToken)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestAdmin() {
	suite.seedCatalog()
	suite.createShirt()
	customerID, customerToken := suite.register("Casey", "casey@example.com")

	w := suite.jsonRequest(http.MethodGet, "/api/admin/dashboard/stats", nil, customerToken)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.jsonRequest(http.MethodGet, "/api/admin/dashboard/stats", nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	stats := suite.data(w)
	assert.Equal(suite.T(), float64(2), stats["totalUsers"])
	assert.Equal(suite.T(), float64(1), stats["totalProducts"])

	w = suite.jsonRequest(http.MethodGet, "/api/admin/users?role=customer", nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), suite.decode(w)["results"])

	w = suite.jsonRequest(http.MethodPatch, fmt.Sprintf("/api/admin/users/%d/status", customerID), map[string]string{"status": "suspended"}, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// Tokens issued before the suspension stop working.
	w = suite.jsonRequest(http.MethodGet, "/api/auth/me", nil, customerToken)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "casey@example.com", "password": "secret123"}, "")
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestRoutingFallbacks() {
	w := suite.jsonRequest(http.MethodGet, "/api/widgets", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "error", suite.decode(w)["status"])

	w = suite.jsonRequest(http.MethodDelete, "/api/products", nil, "")
	assert.Equal(suite.T(), http.StatusMethodNotAllowed, w.Code)
	assert.Equal(suite.T(), "METHOD_NOT_ALLOWED", suite.decode(w)["error"].(map[string]interface{})["code"])
}

func (suite *APITestSuite) TestLocalizedMessages() {
	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	req.Header.Set("Accept-Language", "bn-BD,bn;q=0.9")
	w := suite.do(req, "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "পণ্য পাওয়া যায়নি।", suite.decode(w)["message"])
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
	assert.True(suite.T(), strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func TestInitializeWithLocalStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Upload: config.UploadConfig{Dir: t.TempDir(), PublicPath: "/uploads", MaxFileSize: 1, MaxBodySize: 1},
		JWT:    config.JWTConfig{SecretKey: "secret", AccessTokenTTL: 1},
	}
	r, cleanup, err := router.Initialize(nil, cfg)
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
