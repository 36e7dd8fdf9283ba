// internal/services/product_service.go
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

type ProductService struct {
	db *gorm.DB
}

type ProductImageInput struct {
	URL       string `json:"url" validate:"required,max=500"`
	Alt       string `json:"alt" validate:"required,max=255"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type ProductRequest struct {
	Name           string                `json:"name" validate:"required,max=200"`
	Slug           string                `json:"slug" validate:"omitempty,slug,max=220"`
	Description    string                `json:"description" validate:"required,max=2000"`
	Specifications models.Specifications `json:"specifications"`
	CategoryID     uuid.UUID             `json:"category_id" validate:"required"`
	Tags           []string              `json:"tags,omitempty"`
	Images         []ProductImageInput   `json:"images,omitempty" validate:"dive"`
	IsActive       *bool                 `json:"is_active,omitempty"`
	IsFeatured     *bool                 `json:"is_featured,omitempty"`
	SortOrder      int                   `json:"sort_order"`
	SeoTitle       string                `json:"seo_title,omitempty" validate:"omitempty,max=60"`
	SeoDescription string                `json:"seo_description,omitempty" validate:"omitempty,max=160"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID   *uuid.UUID
	CategorySlug string
	IsActive     *bool
	IsFeatured   *bool
	Tag          string
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) Create(req *ProductRequest) (*models.Product, error) {
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

	var category models.Category
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	product := &models.Product{
		Name:           strings.TrimSpace(req.Name),
		Slug:           slug,
		Description:    strings.TrimSpace(req.Description),
		Specifications: req.Specifications,
		CategoryID:     req.CategoryID,
		Tags:           normalizeTags(req.Tags),
		IsActive:       true,
		SortOrder:      req.SortOrder,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		Images:         buildImages(req.Images),
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.db.Preload("Category").Preload("Images").First(product, "id = ?", product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
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

	if slug != product.Slug {
		if taken, err := s.slugTaken(slug, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSlugTaken
		}
	}

	if req.CategoryID != product.CategoryID {
		var category models.Category
		if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Slug = slug
	product.Description = strings.TrimSpace(req.Description)
	product.Specifications = req.Specifications
	product.CategoryID = req.CategoryID
	product.Tags = normalizeTags(req.Tags)
	product.SortOrder = req.SortOrder
	product.SeoTitle = req.SeoTitle
	product.SeoDescription = req.SeoDescription
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Images are replaced wholesale; the form always submits the full set.
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to clear product images: %w", err)
		}

		product.Images = buildImages(req.Images)
		for i := range product.Images {
			product.Images[i].ProductID = id
		}

		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Category").Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// GetBySlug serves the public product detail page; inactive products stay hidden.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Images").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// Search applies free-text search over name, description and tags,
// intersected with the category/active/featured/tag facets.
func (s *ProductService) Search(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Preload("Images")

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.CategorySlug != "" {
		query = query.Where(
			"category_id IN (?)",
			s.db.Model(&models.Category{}).Select("id").Where("slug = ?", params.CategorySlug),
		)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}
	if params.IsFeatured != nil {
		query = query.Where("is_featured = ?", *params.IsFeatured)
	}
	if params.Tag != "" {
		// Tags persist as a JSON array; a quoted LIKE match is exact enough
		// for exact-string membership.
		query = query.Where("tags LIKE ?", `%"`+strings.ToLower(params.Tag)+`"%`)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if params.Sort == "" {
		// Curated catalog order: sort_order places products by hand,
		// created_at breaks ties with the newest first.
		query = query.Order("sort_order ASC, created_at DESC")
	} else {
		allowedSortFields := []string{"sort_order", "created_at", "updated_at", "name"}
		query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	}
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) ToggleStatus(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	product.IsActive = !product.IsActive
	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle product status: %w", err)
	}

	return &product, nil
}

func (s *ProductService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductService) slugTaken(slug string, excludeID uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// normalizeTags lowercases, trims and deduplicates while keeping order.
func normalizeTags(tags []string) models.StringSlice {
	result := make(models.StringSlice, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		result = result.Add(tag)
	}
	return result
}

func buildImages(inputs []ProductImageInput) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.ProductImage{
			URL:       in.URL,
			Alt:       in.Alt,
			IsPrimary: in.IsPrimary,
			SortOrder: in.SortOrder,
		})
	}
	return images
}
