package api

import (
	"github.com/rpupo63/blog-service-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	homeHandler     homeHandler
	blogPostHandler blogPostHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string                `json:"error" example:"blog post not found"`
	Status  string                `json:"status" example:"error"`
	Field   string                `json:"field,omitempty" example:"title"`
	Details string                `json:"details,omitempty" example:"Additional error details"`
	Errors  []errs.FieldViolation `json:"errors,omitempty"`
}
