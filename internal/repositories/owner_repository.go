// internal/repositories/owner_repository.go
package repositories

import (
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

// OwnerRepository defines the data access contract for owners.
type OwnerRepository interface {
	FindAll() ([]models.Owner, error)
	FindByID(id uuid.UUID) (*models.Owner, error)
	FindProductsByOwner(ownerID uuid.UUID, skip, take int) ([]models.Product, int64, error)
}
