// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func PaginatedResponse(c *gin.Context, data interface{}, meta PaginationMeta) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// RespondError translates any error raised below the handler layer into
// the error envelope. Unrecognized errors are logged and reported as a
// generic internal failure so no storage detail leaks to the caller.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		ErrorResponse(c, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ErrorResponse(c, http.StatusBadRequest, apperrors.CodeValidation, "Invalid input", FormatValidationErrors(validationErrs))
		return
	}

	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
	ErrorResponse(c, http.StatusInternalServerError, apperrors.CodeInternal, "Internal server error", nil)
}
