// internal/services/product_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/repositories"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type ProductService struct {
	products repositories.ProductRepository
	owners   repositories.OwnerRepository
}

type CreateProductRequest struct {
	Name      string               `json:"name" validate:"required,max=255"`
	SKU       string               `json:"sku" validate:"required,max=50,sku"`
	Price     float64              `json:"price" validate:"gte=0,lte=999999.99"`
	Inventory int                  `json:"inventory" validate:"gte=0,lte=999999"`
	Status    models.ProductStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	Image     string               `json:"image" validate:"omitempty,url"`
	OwnerID   uuid.UUID            `json:"ownerId" validate:"required"`
}

// UpdateProductRequest is a partial update: nil fields are left
// untouched, not nulled.
type UpdateProductRequest struct {
	Name      *string               `json:"name" validate:"omitempty,min=1,max=255"`
	SKU       *string               `json:"sku" validate:"omitempty,min=1,max=50,sku"`
	Price     *float64              `json:"price" validate:"omitempty,gte=0,lte=999999.99"`
	Inventory *int                  `json:"inventory" validate:"omitempty,gte=0,lte=999999"`
	Status    *models.ProductStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	Image     *string               `json:"image" validate:"omitempty"`
	OwnerID   *uuid.UUID            `json:"ownerId"`
}

func NewProductService(products repositories.ProductRepository, owners repositories.OwnerRepository) *ProductService {
	return &ProductService{
		products: products,
		owners:   owners,
	}
}

func (s *ProductService) GetProducts(filter repositories.ProductFilter) ([]models.Product, utils.PaginationMeta, error) {
	products, total, err := s.products.FindMany(filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	meta := utils.NewPaginationMeta(total, filter.Page, filter.Limit)
	return products, meta, nil
}

func (s *ProductService) GetProductByID(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound(apperrors.CodeProductNotFound, "Product not found")
	}
	return product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.products.FindBySKU(req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict(apperrors.CodeDuplicateSKU, "A product with this SKU already exists")
	}

	owner, err := s.owners.FindByID(req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFound(apperrors.CodeOwnerNotFound, "Owner not found")
	}

	status := req.Status
	if status == "" {
		status = models.ProductStatusDraft
	}

	product := &models.Product{
		Name:      req.Name,
		SKU:       req.SKU,
		Price:     req.Price,
		Inventory: req.Inventory,
		Status:    status,
		Image:     req.Image,
		OwnerID:   req.OwnerID,
	}

	if err := s.products.Create(product); err != nil {
		// The unique index on sku is the true race guard under
		// concurrent creators with the same SKU.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict(apperrors.CodeDuplicateSKU, "A product with this SKU already exists")
		}
		return nil, err
	}

	return s.products.FindByID(product.ID)
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound(apperrors.CodeProductNotFound, "Product not found")
	}

	// Changing the SKU re-checks uniqueness against all other rows;
	// keeping the current value is not a conflict.
	if req.SKU != nil && *req.SKU != product.SKU {
		existing, err := s.products.FindBySKU(*req.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflict(apperrors.CodeDuplicateSKU, "A product with this SKU already exists")
		}
	}

	if req.OwnerID != nil && *req.OwnerID != product.OwnerID {
		owner, err := s.owners.FindByID(*req.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperrors.NewNotFound(apperrors.CodeOwnerNotFound, "Owner not found")
		}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.OwnerID != nil {
		product.OwnerID = *req.OwnerID
	}

	if err := s.products.Update(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict(apperrors.CodeDuplicateSKU, "A product with this SKU already exists")
		}
		return nil, err
	}

	return s.products.FindByID(id)
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperrors.NewNotFound(apperrors.CodeProductNotFound, "Product not found")
	}

	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.CodeProductNotFound, "Product not found")
		}
		return err
	}
	return nil
}
