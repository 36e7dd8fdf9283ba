// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /api/admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		respondServiceError(c, err, i18n.KeyServerError)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"stats": stats})
}
