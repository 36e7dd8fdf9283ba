// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Specifications holds the known spec keys as fixed optional fields; anything
// a product needs beyond those goes into Extra.
type Specifications struct {
	Dimensions string            `json:"dimensions,omitempty"`
	Weight     string            `json:"weight,omitempty"`
	Material   string            `json:"material,omitempty"`
	Finish     string            `json:"finish,omitempty"`
	Thickness  string            `json:"thickness,omitempty"`
	Colors     StringSlice       `json:"colors,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

func (s Specifications) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Specifications) Scan(value interface{}) error {
	if value == nil {
		*s = Specifications{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported Specifications source type %T", value)
	}
}

type Product struct {
	BaseModel
	Name           string         `json:"name" gorm:"size:200;not null"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;size:220;not null"`
	Description    string         `json:"description" gorm:"size:2000;not null"`
	Specifications Specifications `json:"specifications" gorm:"type:jsonb"`
	CategoryID     uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Tags           StringSlice    `json:"tags" gorm:"type:jsonb"`
	IsActive       bool           `json:"is_active" gorm:"default:true;index"`
	IsFeatured     bool           `json:"is_featured" gorm:"default:false"`
	SortOrder      int            `json:"sort_order" gorm:"default:0"`
	SeoTitle       string         `json:"seo_title,omitempty" gorm:"size:60"`
	SeoDescription string         `json:"seo_description,omitempty" gorm:"size:160"`

	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images   []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	Alt       string    `json:"alt" gorm:"size:255;not null"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
}

// PrimaryImage returns the image flagged primary, falling back to the first one.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
