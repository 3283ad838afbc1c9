// internal/repositories/product_repository.go
package repositories

import (
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

// ProductFilter carries the filter, sort, and page options for listing
// products. Zero-valued fields mean "no constraint on that field".
type ProductFilter struct {
	Search    string
	SKU       string
	OwnerID   *uuid.UUID
	Status    *models.ProductStatus
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	FindMany(filter ProductFilter) ([]models.Product, int64, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	FindBySKU(sku string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
}
