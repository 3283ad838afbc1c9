// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/repositories"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/services"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, limit := utils.GetPageLimit(c)

	filter := repositories.ProductFilter{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		SKU:       c.Query("sku"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	if ownerIDStr := c.Query("ownerId"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeValidation,
				"ownerId must be a valid UUID", nil))
			return
		}
		filter.OwnerID = &ownerID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.ProductStatus(statusStr)
		if !status.Valid() {
			utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeValidation,
				"status must be one of DRAFT, ACTIVE, ARCHIVED", nil))
			return
		}
		filter.Status = &status
	}

	products, meta, err := h.productService.GetProducts(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, products, meta)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid product ID", nil))
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid product ID", nil))
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid product ID", nil))
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
