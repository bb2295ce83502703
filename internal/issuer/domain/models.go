package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Profile holds the issuing business's identity and invoice branding. The
// template name is stored without validation; unknown values fall back to
// the default template at render time.
type Profile struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	BusinessName    string       `gorm:"type:text" json:"business_name,omitempty"`
	FirstName       string       `gorm:"type:text" json:"first_name,omitempty"`
	LastName        string       `gorm:"type:text" json:"last_name,omitempty"`
	Address         string       `gorm:"type:text" json:"address,omitempty"`
	Email           string       `gorm:"type:text" json:"email,omitempty"`
	Phone           string       `gorm:"type:text" json:"phone,omitempty"`
	TaxID           string       `gorm:"type:text" json:"tax_id,omitempty"`
	LogoDataURI     string       `gorm:"column:logo_data_uri;type:text" json:"logo_data_uri,omitempty"`
	PrimaryColor    string       `gorm:"type:text" json:"primary_color,omitempty"`
	SecondaryColor  string       `gorm:"type:text" json:"secondary_color,omitempty"`
	AccentColor     string       `gorm:"type:text" json:"accent_color,omitempty"`
	InvoiceTemplate string       `gorm:"type:text;not null;default:'modern'" json:"invoice_template"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Profile) TableName() string { return "issuer_profiles" }
