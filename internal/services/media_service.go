// internal/services/media_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/models"
	"github.com/artstone/artstone-backend/internal/utils"
)

type MediaService struct {
	db      *gorm.DB
	storage *StorageService
}

type MediaSearchParams struct {
	utils.PaginationParams
	Type *models.MediaType
}

func NewMediaService(db *gorm.DB, storage *StorageService) *MediaService {
	return &MediaService{
		db:      db,
		storage: storage,
	}
}

// Upload stores the file and records it in the media library.
func (s *MediaService) Upload(file multipart.File, header *multipart.FileHeader, alt string) (*models.MediaFile, error) {
	options := s.storage.MediaUploadOptions()

	result, err := s.storage.UploadFile(file, header, options)
	if err != nil {
		return nil, err
	}

	media := &models.MediaFile{
		Filename:     filepath.Base(result.Key),
		OriginalName: header.Filename,
		URL:          result.URL,
		Key:          result.Key,
		Type:         mediaTypeFor(header),
		Size:         result.Size,
		Alt:          alt,
	}

	if err := s.db.Create(media).Error; err != nil {
		// The object is already stored; try not to leave it orphaned.
		if delErr := s.storage.DeleteFile(result.Key); delErr != nil {
			logrus.WithError(delErr).WithField("key", result.Key).Warn("Failed to clean up orphaned upload")
		}
		return nil, fmt.Errorf("failed to save media file: %w", err)
	}

	return media, nil
}

// Search lists library entries newest first; free text matches filename,
// original name and alt text, intersected with the type facet.
func (s *MediaService) Search(params MediaSearchParams) ([]models.MediaFile, int64, error) {
	query := s.db.Model(&models.MediaFile{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(filename) LIKE ? OR LOWER(original_name) LIKE ? OR LOWER(alt) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count media files: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "filename", "size"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var files []models.MediaFile
	if err := query.Find(&files).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch media files: %w", err)
	}

	return files, total, nil
}

func (s *MediaService) Get(id uuid.UUID) (*models.MediaFile, error) {
	var media models.MediaFile
	if err := s.db.First(&media, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &media, nil
}

func (s *MediaService) UpdateAlt(id uuid.UUID, alt string) (*models.MediaFile, error) {
	media, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	media.Alt = alt
	if err := s.db.Save(media).Error; err != nil {
		return nil, fmt.Errorf("failed to update media file: %w", err)
	}

	return media, nil
}

// Delete removes the library record and the stored object.
func (s *MediaService) Delete(id uuid.UUID) error {
	media, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(media).Error; err != nil {
		return fmt.Errorf("failed to delete media file: %w", err)
	}

	if err := s.storage.DeleteFile(media.Key); err != nil {
		logrus.WithError(err).WithField("key", media.Key).Warn("Failed to delete stored object")
	}

	return nil
}

func (s *MediaService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.MediaFile{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count media files: %w", err)
	}
	return count, nil
}

func mediaTypeFor(header *multipart.FileHeader) models.MediaType {
	contentType := header.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaTypeVideo
	}

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return models.MediaTypeImage
	case ".mp4", ".webm":
		return models.MediaTypeVideo
	default:
		return models.MediaTypeDocument
	}
}
