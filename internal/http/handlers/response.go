// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the structured error envelope, the central mapping from
// service/validation errors to HTTP statuses, and small helpers for
// success responses. The goal is uniform, machine-friendly responses for
// both success and failure.
//
// Example error response:
//
//	HTTP/1.1 422 Unprocessable Entity
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "reference_not_found",
//	  "message": "referenced record not found: ingredient"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/http/middleware"
	"github.com/bakehouse/go-recipe-backend/internal/services"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: correlation ID echoed from X-Request-ID, used to match
//     server logs with client-side errors.
//   - Code: stable machine-readable string (see errors.go constants).
//   - Message: human-readable description, safe for display.
//   - Fields: per-field violations, present only for validation_failed.
type ErrorResponse struct {
	RequestID string                  `json:"request_id,omitempty"`
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
}

// DeleteResponse is the confirmation object returned by delete endpoints.
type DeleteResponse struct {
	Message string `json:"message"`
}

// fail aborts the request with a structured error and logs server-side
// errors with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	failFields(c, status, code, msg, nil)
}

func failFields(c *gin.Context, status int, code, msg string, fields []validation.FieldError) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
		Fields:    fields,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), used by router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// respondError maps a service or validation error to the appropriate HTTP
// result. Every handler funnels its error path through here so the
// taxonomy stays consistent across entities:
//
//   - *validation.Errors            -> 400 validation_failed (+fields)
//   - services.ErrNotFound          -> 404 not_found
//   - services.ErrBadReference family -> 422 reference_not_found
//   - services.ErrInUse             -> 409 in_use
//   - anything else                 -> 500 internal_error
func respondError(c *gin.Context, err error) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		failFields(c, http.StatusBadRequest, ErrCodeValidation, "validation failed", verrs.Fields)
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
	case errors.Is(err, services.ErrBadReference):
		fail(c, http.StatusUnprocessableEntity, ErrCodeReference, err.Error())
	case errors.Is(err, services.ErrInUse):
		fail(c, http.StatusConflict, ErrCodeInUse, "record is still referenced by other rows")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// deleted writes the standard delete confirmation.
func deleted(c *gin.Context, msg string) {
	ok(c, http.StatusOK, DeleteResponse{Message: msg})
}
