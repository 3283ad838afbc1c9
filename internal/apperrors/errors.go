// internal/apperrors/errors.go
package apperrors

import "net/http"

// Error codes surfaced in the API error envelope.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
	CodeOwnerNotFound   = "OWNER_NOT_FOUND"
	CodeDuplicateSKU    = "DUPLICATE_SKU"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeUploadFailed    = "UPLOAD_FAILED"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError carries the HTTP status and machine-readable code a failure
// should be reported with.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(code, message string, details interface{}) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: code, Message: message, Details: details}
}

func NewNotFound(code, message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func NewConflict(code, message string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func NewInternal(message string) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return &AppError{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: message}
}
