// internal/services/admin_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalProducts     int64 `json:"total_products"`
	ActiveProducts    int64 `json:"active_products"`
	FeaturedProducts  int64 `json:"featured_products"`
	TotalCategories   int64 `json:"total_categories"`
	ActiveCategories  int64 `json:"active_categories"`
	TotalMediaFiles   int64 `json:"total_media_files"`
	TotalContacts     int64 `json:"total_contacts"`
	ContactsThisMonth int64 `json:"contacts_this_month"`

	ContactsByStatus map[models.ContactStatus]int64 `json:"contacts_by_status"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetDashboardStats aggregates the counters shown on the back-office landing page.
func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		ContactsByStatus: make(map[models.ContactStatus]int64),
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	s.db.Model(&models.Product{}).Count(&stats.TotalProducts)
	s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts)
	s.db.Model(&models.Product{}).Where("is_featured = ?", true).Count(&stats.FeaturedProducts)

	s.db.Model(&models.Category{}).Count(&stats.TotalCategories)
	s.db.Model(&models.Category{}).Where("is_active = ?", true).Count(&stats.ActiveCategories)

	s.db.Model(&models.MediaFile{}).Count(&stats.TotalMediaFiles)

	s.db.Model(&models.Contact{}).Count(&stats.TotalContacts)
	s.db.Model(&models.Contact{}).Where("created_at >= ?", monthStart).Count(&stats.ContactsThisMonth)

	for _, status := range []models.ContactStatus{
		models.ContactStatusNew,
		models.ContactStatusRead,
		models.ContactStatusReplied,
		models.ContactStatusClosed,
	} {
		var count int64
		s.db.Model(&models.Contact{}).Where("status = ?", status).Count(&count)
		stats.ContactsByStatus[status] = count
	}

	return stats, nil
}
