// internal/repositories/owner_gorm_repository.go
package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

// GormOwnerRepository is the gorm implementation of OwnerRepository.
type GormOwnerRepository struct {
	db *gorm.DB
}

func NewGormOwnerRepository(db *gorm.DB) *GormOwnerRepository {
	return &GormOwnerRepository{db: db}
}

func (r *GormOwnerRepository) withProductCount() *gorm.DB {
	return r.db.Model(&models.Owner{}).
		Select("owners.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.owner_id = owners.id").
		Group("owners.id")
}

// FindAll returns every owner ascending by name, annotated with its
// product count.
func (r *GormOwnerRepository) FindAll() ([]models.Owner, error) {
	var owners []models.Owner
	if err := r.withProductCount().Order("owners.name ASC").Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	return owners, nil
}

// FindByID returns the owner with its product count, or (nil, nil) when
// absent.
func (r *GormOwnerRepository) FindByID(id uuid.UUID) (*models.Owner, error) {
	var owner models.Owner
	if err := r.withProductCount().Where("owners.id = ?", id).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner %s: %w", id, err)
	}
	return &owner, nil
}

// FindProductsByOwner fetches one owner's products newest first, running
// the page fetch and the total count concurrently.
func (r *GormOwnerRepository) FindProductsByOwner(ownerID uuid.UUID, skip, take int) ([]models.Product, int64, error) {
	var (
		products []models.Product
		total    int64
		g        errgroup.Group
	)

	g.Go(func() error {
		return r.db.
			Where("owner_id = ?", ownerID).
			Order("created_at DESC").
			Offset(skip).
			Limit(take).
			Find(&products).Error
	})

	g.Go(func() error {
		return r.db.Model(&models.Product{}).Where("owner_id = ?", ownerID).Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to list products for owner %s: %w", ownerID, err)
	}

	return products, total, nil
}
