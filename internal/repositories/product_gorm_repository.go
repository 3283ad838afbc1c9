// internal/repositories/product_gorm_repository.go
package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

// Query parameter names mapped to sortable columns. Anything else falls
// back to created_at.
var productSortColumns = map[string]string{
	"name":      "name",
	"sku":       "sku",
	"price":     "price",
	"inventory": "inventory",
	"status":    "status",
	"createdAt": "created_at",
}

// GormProductRepository is the gorm implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindMany executes the filtered row fetch and the matching-row count
// concurrently; both are read-only and independent.
func (r *GormProductRepository) FindMany(filter ProductFilter) ([]models.Product, int64, error) {
	skip, take := utils.SkipTake(filter.Page, filter.Limit)

	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "desc"
	if filter.SortOrder == "asc" {
		order = "asc"
	}

	var (
		products []models.Product
		total    int64
		g        errgroup.Group
	)

	g.Go(func() error {
		return r.applyFilter(filter).
			Preload("Owner").
			Order(column + " " + order).
			Offset(skip).
			Limit(take).
			Find(&products).Error
	})

	g.Go(func() error {
		return r.applyFilter(filter).Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// applyFilter builds a fresh query each time so the two FindMany
// goroutines never share a gorm statement.
func (r *GormProductRepository) applyFilter(filter ProductFilter) *gorm.DB {
	query := r.db.Model(&models.Product{})

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.SKU != "" {
		query = query.Where("LOWER(sku) LIKE LOWER(?)", "%"+filter.SKU+"%")
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	return query
}

// FindByID returns the product joined with its owner, or (nil, nil) when
// absent.
func (r *GormProductRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Owner").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by SKU %s: %w", sku, err)
	}
	return &product, nil
}

func (r *GormProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit("Owner").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Update(product *models.Product) error {
	if err := r.db.Omit("Owner").Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
