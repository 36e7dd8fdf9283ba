// internal/models/contact.go
package models

type Contact struct {
	BaseModel
	Name     string          `json:"name" gorm:"size:100;not null"`
	Email    string          `json:"email" gorm:"size:100;not null;index"`
	Phone    string          `json:"phone,omitempty" gorm:"size:20"`
	Company  string          `json:"company,omitempty" gorm:"size:100"`
	Subject  string          `json:"subject" gorm:"size:200;not null"`
	Message  string          `json:"message" gorm:"size:2000;not null"`
	Status   ContactStatus   `json:"status" gorm:"type:varchar(20);default:'new';index"`
	Priority ContactPriority `json:"priority" gorm:"type:varchar(20);default:'medium';index"`
	Notes    string          `json:"notes" gorm:"type:text"`
}
