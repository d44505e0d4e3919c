package services_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/config"
	"github.com/javajoker/retail-backend/internal/database"
	"github.com/javajoker/retail-backend/internal/models"
)

func init() {
	logrus.SetLevel(logrus.ErrorLevel)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(config.DatabaseConfig{
		Driver:       "sqlite",
		Database:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.RunMigrations(db))
	return db
}

// seedCatalog creates one category with one subcategory and returns both.
func seedCatalog(t *testing.T, db *gorm.DB) (*models.Category, *models.SubCategory) {
	t.Helper()

	category := &models.Category{Name: "Clothing"}
	require.NoError(t, db.Create(category).Error)
	subCategory := &models.SubCategory{Name: "Shirts", CategoryID: category.ID}
	require.NoError(t, db.Create(subCategory).Error)
	return category, subCategory
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()

	category, subCategory := seedCatalogOnce(t, db)
	product := &models.Product{
		ProductName:   name,
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		PurchasePrice: price / 2,
		SellingPrice:  price,
		Stock:         stock,
		Status:        models.ProductStatusActive,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCatalogOnce(t *testing.T, db *gorm.DB) (*models.Category, *models.SubCategory) {
	t.Helper()

	var subCategory models.SubCategory
	if err := db.Preload("Category").First(&subCategory).Error; err == nil {
		return subCategory.Category, &subCategory
	}
	return seedCatalog(t, db)
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:   "Test User",
		Email:  email,
		Role:   role,
		Status: models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func uploadedFile(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field][0]
}

func requireKind(t *testing.T, err error, kind apperr.Kind, key string) *apperr.Error {
	t.Helper()

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind, "error: %v", err)
	require.Equal(t, key, appErr.Key)
	return appErr
}
