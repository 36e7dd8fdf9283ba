// internal/services/category_service.go
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

type CategoryService struct {
	db *gorm.DB
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,slug,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image" validate:"omitempty,max=500"`
	IsActive    *bool  `json:"is_active,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if !utils.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w from %q", ErrInvalidSlug, req.Name)
	}

	if taken, err := s.slugTaken(slug, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSlugTaken
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Update(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if !utils.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w from %q", ErrInvalidSlug, req.Name)
	}

	if slug != category.Slug {
		if taken, err := s.slugTaken(slug, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSlugTaken
		}
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Slug = slug
	category.Description = req.Description
	category.Image = req.Image
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.fillProductCount(&category)
	return &category, nil
}

// List returns categories sorted by sort order with their product counts.
func (s *CategoryService) List(activeOnly bool) ([]models.Category, error) {
	query := s.db.Model(&models.Category{}).Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	for i := range categories {
		s.fillProductCount(&categories[i])
	}

	return categories, nil
}

func (s *CategoryService) Get(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.fillProductCount(&category)
	return &category, nil
}

func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.fillProductCount(&category)
	return &category, nil
}

func (s *CategoryService) ToggleStatus(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	category.IsActive = !category.IsActive
	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle category status: %w", err)
	}

	s.fillProductCount(&category)
	return &category, nil
}

// Delete removes a category, refusing while any product still references it.
func (s *CategoryService) Delete(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	count, err := s.productCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &CategoryInUseError{Count: count}
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *CategoryService) productCount(id uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (s *CategoryService) fillProductCount(category *models.Category) {
	if count, err := s.productCount(category.ID); err == nil {
		category.ProductCount = count
	}
}

func (s *CategoryService) slugTaken(slug string, excludeID uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}
