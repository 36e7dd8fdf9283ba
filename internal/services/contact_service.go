// internal/services/contact_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/models"
	"github.com/artstone/artstone-backend/internal/utils"
)

type ContactService struct {
	db *gorm.DB
}

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,max=100,contact_email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Company string `json:"company,omitempty" validate:"omitempty,max=100"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

type ContactSearchParams struct {
	utils.PaginationParams
	Status   *models.ContactStatus
	Priority *models.ContactPriority
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Submit persists a public contact form submission with status "new".
func (s *ContactService) Submit(req *SubmitContactRequest) (*models.Contact, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact := &models.Contact{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Company:  strings.TrimSpace(req.Company),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
		Status:   models.ContactStatusNew,
		Priority: models.ContactPriorityMedium,
	}

	if err := s.db.Create(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	// TODO: send notification email once an SMTP account is provisioned.

	return contact, nil
}

// Search lists inquiries newest first, with free-text search over name,
// email, subject and company intersected with status/priority facets.
func (s *ContactService) Search(params ContactSearchParams) ([]models.Contact, int64, error) {
	query := s.db.Model(&models.Contact{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Priority != nil {
		query = query.Where("priority = ?", *params.Priority)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(company) LIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "priority", "name"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var contacts []models.Contact
	if err := query.Find(&contacts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	return contacts, total, nil
}

// Get returns a single inquiry and, on the first view of a "new" one, marks
// it "read". Repeat views leave it alone.
func (s *ContactService) Get(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if contact.Status == models.ContactStatusNew {
		contact.Status = models.ContactStatusRead
		if err := s.db.Save(&contact).Error; err != nil {
			return nil, fmt.Errorf("failed to mark contact read: %w", err)
		}
	}

	return &contact, nil
}

func (s *ContactService) UpdateStatus(id uuid.UUID, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid contact status %q", status)
	}

	var contact models.Contact
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	contact.Status = status
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	return &contact, nil
}

func (s *ContactService) UpdatePriority(id uuid.UUID, priority models.ContactPriority) (*models.Contact, error) {
	if !priority.Valid() {
		return nil, fmt.Errorf("invalid contact priority %q", priority)
	}

	var contact models.Contact
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	contact.Priority = priority
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact priority: %w", err)
	}

	return &contact, nil
}

func (s *ContactService) UpdateNotes(id uuid.UUID, notes string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	contact.Notes = notes
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact notes: %w", err)
	}

	return &contact, nil
}

// BulkUpdateStatus applies one status to several inquiries at once.
func (s *ContactService) BulkUpdateStatus(ids []uuid.UUID, status models.ContactStatus) (int64, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("invalid contact status %q", status)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := s.db.Model(&models.Contact{}).Where("id IN ?", ids).Update("status", status)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update contacts: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (s *ContactService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StatusCounts returns the inbox breakdown shown on the dashboard.
func (s *ContactService) StatusCounts() (map[models.ContactStatus]int64, error) {
	type row struct {
		Status models.ContactStatus
		Count  int64
	}

	var rows []row
	if err := s.db.Model(&models.Contact{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count contacts by status: %w", err)
	}

	counts := make(map[models.ContactStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
