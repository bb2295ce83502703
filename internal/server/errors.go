package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
)

var (
	ErrNotFound        = &apiError{status: http.StatusNotFound, code: "not_found", message: "resource not found"}
	ErrTooManyRequests = &apiError{status: http.StatusTooManyRequests, code: "rate_limited", message: "too many requests"}
)

type apiError struct {
	status  int
	code    string
	message string
	field   string
}

func (e *apiError) Error() string { return e.message }

func newValidationError(field, code, message string) *apiError {
	return &apiError{status: http.StatusBadRequest, code: code, message: message, field: field}
}

func invalidRequestError() *apiError {
	return &apiError{status: http.StatusBadRequest, code: "invalid_request", message: "invalid request body"}
}

// AbortWithError maps domain errors onto HTTP responses. Unknown errors
// become 500s without leaking internals.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		body := gin.H{"code": apiErr.code, "message": apiErr.message}
		if apiErr.field != "" {
			body["field"] = apiErr.field
		}
		c.AbortWithStatusJSON(apiErr.status, gin.H{"error": body})
		return
	}

	switch {
	case errors.Is(err, invoicedomain.ErrInvalidInvoiceID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    "invalid_invoice_id",
			"message": "invalid invoice id",
		}})
	case errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code":    "invoice_not_found",
			"message": "invoice not found",
		}})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		}})
	}
}
