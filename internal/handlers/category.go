// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GET /api/categories lists active categories for the storefront navigation.
func (h *CategoryHandler) ListPublic(c *gin.Context) {
	categories, err := h.categoryService.List(true)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"categories": categories})
}

// GET /api/admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(false)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"categories": categories})
}

// GET /api/admin/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"category": category})
}

// POST /api/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyCategoryCreated), gin.H{"category": category})
}

// PUT /api/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyCategoryUpdated), gin.H{"category": category})
}

// PATCH /api/admin/categories/:id/status
func (h *CategoryHandler) ToggleStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.ToggleStatus(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyCategoryUpdated), gin.H{"category": category})
}

// DELETE /api/admin/categories/:id is refused while products still reference it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyCategoryDeleted), nil)
}
