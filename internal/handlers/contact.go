// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/models"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// POST /api/contact serves the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyContactRequired))
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyContactRequired))
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyContactInvalidEmail))
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	if _, err := h.contactService.Submit(&req); err != nil {
		logrus.WithError(err).Error("Contact form submission failed")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyContactSubmitFailed))
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactSubmitted), nil)
}

// GET /api/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	params := services.ContactSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.ContactStatus(statusStr)
		if !status.Valid() {
			utils.BadRequestResponse(c, "")
			return
		}
		params.Status = &status
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority := models.ContactPriority(priorityStr)
		if !priority.Valid() {
			utils.BadRequestResponse(c, "")
			return
		}
		params.Priority = &priority
	}

	contacts, total, err := h.contactService.Search(params)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(contacts, total, params.PaginationParams))
}

// GET /api/admin/contacts/:id. The first view of a new inquiry marks it read.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"contact": contact})
}

// PUT /api/admin/contacts/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Status models.ContactStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		utils.BadRequestResponse(c, "")
		return
	}

	contact, err := h.contactService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactUpdated), gin.H{"contact": contact})
}

// PUT /api/admin/contacts/:id/priority
func (h *ContactHandler) UpdatePriority(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Priority models.ContactPriority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Priority.Valid() {
		utils.BadRequestResponse(c, "")
		return
	}

	contact, err := h.contactService.UpdatePriority(id, req.Priority)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactUpdated), gin.H{"contact": contact})
}

// PUT /api/admin/contacts/:id/notes
func (h *ContactHandler) UpdateNotes(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "")
		return
	}

	contact, err := h.contactService.UpdateNotes(id, req.Notes)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactUpdated), gin.H{"contact": contact})
}

// POST /api/admin/contacts/bulk-status
func (h *ContactHandler) BulkUpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		IDs    []string             `json:"ids"`
		Status models.ContactStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() || len(req.IDs) == 0 {
		utils.BadRequestResponse(c, "")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.BadRequestResponse(c, "")
			return
		}
		ids = append(ids, id)
	}

	updated, err := h.contactService.BulkUpdateStatus(ids, req.Status)
	if err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactUpdated), gin.H{"updated": updated})
}

// DELETE /api/admin/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyContactNotFound)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyContactDeleted), nil)
}
