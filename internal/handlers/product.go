// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) searchParams(c *gin.Context) (services.ProductSearchParams, bool) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		CategorySlug:     c.Query("category"),
		Tag:              c.Query("tag"),
	}
	// Leave the sort empty when the client did not ask for one, so the
	// search can fall back to the curated catalog order.
	params.Sort = c.Query("sort")

	if idStr := c.Query("category_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			utils.BadRequestResponse(c, "")
			return params, false
		}
		params.CategoryID = &id
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			utils.BadRequestResponse(c, "")
			return params, false
		}
		params.IsActive = &active
	}
	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			utils.BadRequestResponse(c, "")
			return params, false
		}
		params.IsFeatured = &featured
	}

	return params, true
}

// GET /api/products serves the storefront catalog, active products only.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	params, ok := h.searchParams(c)
	if !ok {
		return
	}
	active := true
	params.IsActive = &active

	products, total, err := h.productService.Search(params)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params.PaginationParams))
}

// GET /api/products/:slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"product": product})
}

// GET /api/admin/products
func (h *ProductHandler) List(c *gin.Context) {
	params, ok := h.searchParams(c)
	if !ok {
		return
	}

	products, total, err := h.productService.Search(params)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params.PaginationParams))
}

// GET /api/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"product": product})
}

// POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyProductCreated), gin.H{"product": product})
}

// PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductUpdated), gin.H{"product": product})
}

// PATCH /api/admin/products/:id/status
func (h *ProductHandler) ToggleStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.ToggleStatus(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductUpdated), gin.H{"product": product})
}

// DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductDeleted), nil)
}
