// internal/services/media_service_test.go
package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstone/artstone-backend/internal/models"
)

func headerFor(filename, contentType string) *multipart.FileHeader {
	mimeHeader := textproto.MIMEHeader{}
	if contentType != "" {
		mimeHeader.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   mimeHeader,
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        models.MediaType
	}{
		{"image content type", "photo.bin", "image/jpeg", models.MediaTypeImage},
		{"video content type", "clip.bin", "video/mp4", models.MediaTypeVideo},
		{"pdf falls back to document", "catalog.pdf", "", models.MediaTypeDocument},
		{"image extension fallback", "photo.webp", "", models.MediaTypeImage},
		{"video extension fallback", "clip.webm", "", models.MediaTypeVideo},
		{"unknown defaults to document", "data.bin", "", models.MediaTypeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaTypeFor(headerFor(tt.filename, tt.contentType)))
		})
	}
}

func TestMediaSearchByType(t *testing.T) {
	db := newTestDB(t)
	service := NewMediaService(db, nil)

	require.NoError(t, db.Create(&models.MediaFile{
		Filename: "panel.jpg", OriginalName: "panel.jpg",
		URL: "/uploads/media/panel.jpg", Key: "media/panel.jpg",
		Type: models.MediaTypeImage, Size: 1024,
	}).Error)
	require.NoError(t, db.Create(&models.MediaFile{
		Filename: "catalog.pdf", OriginalName: "catalog.pdf",
		URL: "/uploads/media/catalog.pdf", Key: "media/catalog.pdf",
		Type: models.MediaTypeDocument, Size: 2048,
	}).Error)

	imageType := models.MediaTypeImage
	files, total, err := service.Search(MediaSearchParams{Type: &imageType})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, files, 1)
	assert.Equal(t, "panel.jpg", files[0].Filename)
}

func TestMediaUpdateAlt(t *testing.T) {
	db := newTestDB(t)
	service := NewMediaService(db, nil)

	media := &models.MediaFile{
		Filename: "panel.jpg", OriginalName: "panel.jpg",
		URL: "/uploads/media/panel.jpg", Key: "media/panel.jpg",
		Type: models.MediaTypeImage, Size: 1024,
	}
	require.NoError(t, db.Create(media).Error)

	updated, err := service.UpdateAlt(media.ID, "Slate wall panel")
	require.NoError(t, err)
	assert.Equal(t, "Slate wall panel", updated.Alt)
}
