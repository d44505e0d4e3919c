// internal/services/product_service.go
package services

import (
	"context"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/repository"
	"github.com/javajoker/retail-backend/internal/utils"
)

var productRelations = []string{"Category", "SubCategory"}

type ProductService struct {
	products    repository.Repository[models.Product]
	storage     *StorageService
	maxFileSize int64
}

// CreateProductRequest carries the raw multipart form values. Numbers are
// parsed by the service so that missing and malformed fields are reported
// separately.
type CreateProductRequest struct {
	ProductName   string
	CategoryID    string
	SubCategoryID string
	PurchasePrice string
	SellingPrice  string
	Stock         string
	Description   string
	Status        string
	Images        map[string]*multipart.FileHeader
}

// UpdateProductRequest lists every field a client may change. Absent fields
// are left untouched.
type UpdateProductRequest struct {
	ProductName   *string               `json:"productName" validate:"omitempty,notblank,max=255"`
	CategoryID    *uint                 `json:"categoryID" validate:"omitempty,gt=0"`
	SubCategoryID *uint                 `json:"subCategoryID" validate:"omitempty,gt=0"`
	PurchasePrice *float64              `json:"purchasePrice" validate:"omitempty,gte=0"`
	SellingPrice  *float64              `json:"sellingPrice" validate:"omitempty,gte=0"`
	Stock         *int                  `json:"stock" validate:"omitempty,gte=0"`
	Description   *string               `json:"description"`
	Status        *models.ProductStatus `json:"status" validate:"omitempty,oneof=active inactive out_of_stock"`
}

func NewProductService(products repository.Repository[models.Product], storage *StorageService, maxFileSize int64) *ProductService {
	return &ProductService{
		products:    products,
		storage:     storage,
		maxFileSize: maxFileSize,
	}
}

// CreateProduct validates the form, stores the images and inserts the row.
// Nothing is written until every check passed; the stored images are removed
// again when the insert fails.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}

	refs, err := s.storage.SaveImages(ctx, req.Images)
	if err != nil {
		return nil, apperr.Internal(i18n.KeyFileUploadFailed, err)
	}
	for field, ref := range refs {
		product.SetImage(field, ref)
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.storage.DeleteFiles(ctx, mapValues(refs))
		return nil, apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductCreateFailed)
	}

	created, err := s.products.FindUnique(ctx, product.ID, productRelations...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductCreateFailed)
	}
	return created, nil
}

func (s *ProductService) buildProduct(req *CreateProductRequest) (*models.Product, error) {
	required := []struct {
		field string
		value string
	}{
		{"productName", req.ProductName},
		{"categoryID", req.CategoryID},
		{"subCategoryID", req.SubCategoryID},
		{"purchasePrice", req.PurchasePrice},
		{"sellingPrice", req.SellingPrice},
		{"stock", req.Stock},
	}

	var missing []utils.ValidationError
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, utils.ValidationError{
				Field:   r.field,
				Tag:     "required",
				Message: i18n.T(i18n.DefaultLanguage(), i18n.KeyValidationRequired, r.field),
			})
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation(i18n.KeyProductMissingFields).WithDetails(missing)
	}

	if len(req.Images) == 0 {
		return nil, apperr.Validation(i18n.KeyProductNoImages)
	}
	for field, header := range req.Images {
		if err := utils.ValidateImageFile(field, header, s.maxFileSize); err != nil {
			return nil, err
		}
	}

	p := numberParser{}
	product := &models.Product{
		ProductName:   strings.TrimSpace(req.ProductName),
		CategoryID:    p.id("categoryID", req.CategoryID),
		SubCategoryID: p.id("subCategoryID", req.SubCategoryID),
		PurchasePrice: p.price("purchasePrice", req.PurchasePrice),
		SellingPrice:  p.price("sellingPrice", req.SellingPrice),
		Stock:         p.integer("stock", req.Stock),
		Status:        models.ProductStatusActive,
	}
	if len(p.errs) > 0 {
		return nil, apperr.Validation(i18n.KeyValidationInvalid, "input").WithDetails(p.errs)
	}

	if req.Description != "" {
		description := req.Description
		product.Description = &description
	}

	if status := strings.TrimSpace(req.Status); status != "" {
		product.Status = models.ProductStatus(status)
		if !product.Status.Valid() {
			return nil, apperr.Validation(i18n.KeyProductInvalidStatus).WithDetails([]utils.ValidationError{{
				Field:   "status",
				Tag:     "oneof",
				Message: "status must be one of: active inactive out_of_stock",
			}})
		}
	}

	return product, nil
}

// numberParser collects every malformed numeric form value instead of
// stopping at the first one.
type numberParser struct {
	errs []utils.ValidationError
}

func (p *numberParser) fail(field, tag string) {
	p.errs = append(p.errs, utils.ValidationError{
		Field:   field,
		Tag:     tag,
		Message: i18n.T(i18n.DefaultLanguage(), i18n.KeyValidationNumber, field),
	})
}

func (p *numberParser) id(field, value string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		p.fail(field, "uint")
		return 0
	}
	return uint(n)
}

func (p *numberParser) price(field, value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(field, "number")
		return 0
	}
	return f
}

func (p *numberParser) integer(field, value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		p.fail(field, "int")
		return 0
	}
	return n
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindMany(ctx, productRelations...)
	if err != nil {
		return nil, apperr.Internal(i18n.KeyProductFetchFailed, err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindUnique(ctx, id, productRelations...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductRetrieveFailed)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	updates := req.fields()
	if len(updates) == 0 {
		return nil, apperr.Validation(i18n.KeyEmptyUpdate)
	}

	product, err := s.products.Update(ctx, id, updates, productRelations...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductUpdateFailed)
	}
	return product, nil
}

func (r *UpdateProductRequest) fields() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.ProductName != nil {
		updates["product_name"] = strings.TrimSpace(*r.ProductName)
	}
	if r.CategoryID != nil {
		updates["category_id"] = *r.CategoryID
	}
	if r.SubCategoryID != nil {
		updates["sub_category_id"] = *r.SubCategoryID
	}
	if r.PurchasePrice != nil {
		updates["purchase_price"] = *r.PurchasePrice
	}
	if r.SellingPrice != nil {
		updates["selling_price"] = *r.SellingPrice
	}
	if r.Stock != nil {
		updates["stock"] = *r.Stock
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}

// DeleteProduct removes the row, then its stored images on a best-effort
// basis.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.products.FindUnique(ctx, id)
	if err != nil {
		return apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductDeleteFailed)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyProductDeleteFailed)
	}

	s.storage.DeleteFiles(ctx, product.Images())
	return nil
}
