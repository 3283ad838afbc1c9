// internal/models/owner.go
package models

type Owner struct {
	BaseModel
	Name   string `json:"name" gorm:"size:255;not null"`
	Email  string `json:"email" gorm:"size:255;not null"`
	Avatar string `json:"avatar,omitempty" gorm:"size:512"`

	// Aggregated from the products table, never written.
	ProductCount int64 `json:"productCount" gorm:"->;-:migration"`

	// Relationships
	Products []Product `json:"-" gorm:"foreignKey:OwnerID"`
}
