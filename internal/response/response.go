package response

import "github.com/gin-gonic/gin"

// Error codes shared between the service layer and the HTTP surface
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type returned by the service layer.
// Fields carries a field->message map for validation failures,
// Details carries a free-form list (e.g. per-member team errors).
type AppError struct {
	Code    string
	Message string
	Details string
	Fields  map[string]string
	Items   []string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates an AppError with the given code, message and details
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates a validation AppError
func NewValidationError(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// NewFieldValidationError creates a validation AppError carrying a field->message map
func NewFieldValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Fields: fields}
}

// NewConflictError creates an already-exists AppError
func NewConflictError(message string) *AppError {
	return &AppError{Code: ErrCodeAlreadyExists, Message: message}
}

// NewNotFoundError creates a not-found AppError
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NewForbiddenError creates a forbidden AppError
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// ErrorBody is the inner error object of an ErrorResponse
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details []string          `json:"details,omitempty"`
}

// ErrorResponse is the JSON envelope for failed requests
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SuccessResponse is the JSON envelope for successful requests
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// SendError writes an error envelope with the given status
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// SendFieldErrors writes a 422 validation envelope with a field->message map,
// matching the shape the registration and team forms consume
func SendFieldErrors(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}})
}

// SendErrorDetails writes an error envelope with a detail list
func SendErrorDetails(c *gin.Context, status int, code, message string, details []string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Details: details}})
}

// SendSuccess writes a success envelope with the given status
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}
