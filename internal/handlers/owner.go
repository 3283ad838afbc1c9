// internal/handlers/owner.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/services"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type OwnerHandler struct {
	ownerService *services.OwnerService
}

func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// GET /api/owners
func (h *OwnerHandler) GetOwners(c *gin.Context) {
	owners, err := h.ownerService.GetAllOwners()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, owners)
}

// GET /api/owners/:id
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid owner ID", nil))
		return
	}

	owner, err := h.ownerService.GetOwnerByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, owner)
}

// GET /api/owners/:id/products
func (h *OwnerHandler) GetOwnerProducts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeBadRequest, "Invalid owner ID", nil))
		return
	}

	page, limit := utils.GetPageLimit(c)

	products, meta, err := h.ownerService.GetProductsByOwner(id, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, products, meta)
}
