// internal/handlers/helpers.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

// parseIDParam pulls and validates the :id path segment.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps a service error onto the response envelope.
// notFoundKey names the i18n message used for ErrNotFound.
func respondServiceError(c *gin.Context, err error, notFoundKey string) {
	lang := utils.GetLangFromContext(c)

	var inUse *services.CategoryInUseError
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, services.ErrEmailTaken):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailInUse))
	case errors.Is(err, services.ErrSlugTaken), errors.Is(err, services.ErrInvalidSlug):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthWrongPassword))
	case errors.As(err, &inUse):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCategoryHasProducts, inUse.Count))
	default:
		if fieldErrors := utils.GetValidationErrors(errors.Unwrap(err)); len(fieldErrors) > 0 {
			utils.ValidationErrorResponse(c, fieldErrors)
			return
		}
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
