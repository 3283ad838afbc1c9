// internal/services/owner_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/repositories"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type OwnerService struct {
	owners repositories.OwnerRepository
}

func NewOwnerService(owners repositories.OwnerRepository) *OwnerService {
	return &OwnerService{owners: owners}
}

func (s *OwnerService) GetAllOwners() ([]models.Owner, error) {
	return s.owners.FindAll()
}

func (s *OwnerService) GetOwnerByID(id uuid.UUID) (*models.Owner, error) {
	owner, err := s.owners.FindByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFound(apperrors.CodeOwnerNotFound, "Owner not found")
	}
	return owner, nil
}

func (s *OwnerService) GetProductsByOwner(ownerID uuid.UUID, page, limit int) ([]models.Product, utils.PaginationMeta, error) {
	owner, err := s.owners.FindByID(ownerID)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	if owner == nil {
		return nil, utils.PaginationMeta{}, apperrors.NewNotFound(apperrors.CodeOwnerNotFound, "Owner not found")
	}

	skip, take := utils.SkipTake(page, limit)
	products, total, err := s.owners.FindProductsByOwner(ownerID, skip, take)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	meta := utils.NewPaginationMeta(total, page, limit)
	return products, meta, nil
}
