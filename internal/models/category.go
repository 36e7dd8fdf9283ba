// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	Description string `json:"description" gorm:"size:500"`
	Image       string `json:"image" gorm:"size:500"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`

	// ProductCount is derived from the products table; never written directly.
	ProductCount int64 `json:"product_count" gorm:"-"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
