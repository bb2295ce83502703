package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// RenderResult is a finished invoice document ready to be served as an
// attachment or mailed.
type RenderResult struct {
	FileName string
	Data     []byte
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Invoice, error)
	RenderPDF(ctx context.Context, id string) (*RenderResult, error)
}

// ParseID parses a snowflake invoice ID from its string form.
func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
)
