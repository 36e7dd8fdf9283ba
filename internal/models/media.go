// internal/models/media.go
package models

type MediaFile struct {
	BaseModel
	Filename     string    `json:"filename" gorm:"size:255;not null"`
	OriginalName string    `json:"original_name" gorm:"size:255;not null"`
	URL          string    `json:"url" gorm:"size:500;not null"`
	Key          string    `json:"key" gorm:"size:500;not null"`
	Type         MediaType `json:"type" gorm:"type:varchar(20);not null;index"`
	Size         int64     `json:"size" gorm:"not null"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Alt          string    `json:"alt,omitempty" gorm:"size:255"`
}
