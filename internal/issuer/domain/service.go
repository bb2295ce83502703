package domain

import (
	"context"
	"errors"
)

// UpdateBrandingRequest patches branding fields; nil fields are untouched.
// Template names are accepted as-is: validation is deferred to the
// read-time registry fallback so a stale preference can never block writes.
type UpdateBrandingRequest struct {
	BusinessName    *string `json:"business_name"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	TaxID           *string `json:"tax_id"`
	LogoDataURI     *string `json:"logo_data_uri"`
	PrimaryColor    *string `json:"primary_color"`
	SecondaryColor  *string `json:"secondary_color"`
	AccentColor     *string `json:"accent_color"`
	InvoiceTemplate *string `json:"invoice_template"`
}

type Service interface {
	// Get returns the issuer profile. A missing profile yields an empty
	// profile with default branding rather than an error, so rendering
	// always has an issuer to work with.
	Get(ctx context.Context) (*Profile, error)
	UpdateBranding(ctx context.Context, req UpdateBrandingRequest) (*Profile, error)
}

var ErrProfileNotFound = errors.New("profile_not_found")
