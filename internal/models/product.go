// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name      string        `json:"name" gorm:"size:255;not null"`
	SKU       string        `json:"sku" gorm:"column:sku;size:50;not null;uniqueIndex:idx_products_sku"`
	Price     float64       `json:"price" gorm:"type:decimal(10,2);not null"`
	Inventory int           `json:"inventory" gorm:"not null;default:0"`
	Status    ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Image     string        `json:"image,omitempty" gorm:"size:512"`
	OwnerID   uuid.UUID     `json:"ownerId" gorm:"type:uuid;not null;index"`

	// Relationships
	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
