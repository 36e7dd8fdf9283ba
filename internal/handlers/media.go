// internal/handlers/media.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/models"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// GET /api/admin/media
func (h *MediaHandler) List(c *gin.Context) {
	params := services.MediaSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if typeStr := c.Query("type"); typeStr != "" {
		mediaType := models.MediaType(typeStr)
		if !mediaType.Valid() {
			utils.BadRequestResponse(c, "")
			return
		}
		params.Type = &mediaType
	}

	files, total, err := h.mediaService.Search(params)
	if err != nil {
		respondServiceError(c, err, i18n.KeyMediaNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(files, total, params.PaginationParams))
}

// POST /api/admin/media accepts a multipart upload with an optional alt field.
func (h *MediaHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaUploadFailed))
		return
	}
	defer file.Close()

	media, err := h.mediaService.Upload(file, header, c.PostForm("alt"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaTooLarge))
		case errors.Is(err, services.ErrFileTypeNotAllowed):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaInvalidType))
		default:
			respondServiceError(c, err, i18n.KeyMediaNotFound)
		}
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyMediaUploaded), gin.H{"media": media})
}

// GET /api/admin/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	media, err := h.mediaService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyMediaNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"media": media})
}

// PUT /api/admin/media/:id. Only the alt text is editable after upload.
func (h *MediaHandler) UpdateAlt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Alt string `json:"alt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "")
		return
	}

	media, err := h.mediaService.UpdateAlt(id, req.Alt)
	if err != nil {
		respondServiceError(c, err, i18n.KeyMediaNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyMediaUpdated), gin.H{"media": media})
}

// DELETE /api/admin/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.mediaService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyMediaNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyMediaDeleted), nil)
}
