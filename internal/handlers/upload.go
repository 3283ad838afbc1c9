// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/services"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/upload (multipart, single field "image")
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, apperrors.NewBadRequest(apperrors.CodeUploadFailed, "No file uploaded", nil))
		return
	}

	result, err := h.storageService.SaveImage(header)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
