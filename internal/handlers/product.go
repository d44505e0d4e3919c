// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, i18n.KeyProductFetchFailed)
		return
	}

	utils.ListResponse(c, products, len(products))
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyProductInvalidID)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyProductRetrieveFailed)
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products (multipart/form-data)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	req := &services.CreateProductRequest{
		ProductName:   c.PostForm("productName"),
		CategoryID:    c.PostForm("categoryID"),
		SubCategoryID: c.PostForm("subCategoryID"),
		PurchasePrice: c.PostForm("purchasePrice"),
		SellingPrice:  c.PostForm("sellingPrice"),
		Stock:         c.PostForm("stock"),
		Description:   c.PostForm("description"),
		Status:        c.PostForm("status"),
	}
	req.Images = utils.ImageFiles(c.Request.MultipartForm)

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyProductCreateFailed)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyProductCreated), product)
}

// PUT|PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyProductInvalidID)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyProductUpdateFailed)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyProductUpdateFailed)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyProductUpdated), product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyProductInvalidID)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, i18n.KeyProductDeleteFailed)
		return
	}

	utils.NoContentResponse(c)
}
