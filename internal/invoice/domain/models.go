package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Client is an invoice recipient.
type Client struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text;not null" json:"email"`
	Address   string       `gorm:"type:text" json:"address,omitempty"`
	Phone     string       `gorm:"type:text" json:"phone,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }

// Invoice is a stored invoice. Monetary fields are decimal-as-string with
// 2-decimal currency semantics, computed at write time; the render path
// trusts them as-is.
type Invoice struct {
	ID             snowflake.ID      `gorm:"primaryKey" json:"id,string"`
	ClientID       snowflake.ID      `gorm:"not null;index" json:"client_id,string"`
	Client         Client            `json:"client"`
	Number         string            `gorm:"column:invoice_number;type:text;not null;uniqueIndex" json:"invoice_number"`
	Status         string            `gorm:"type:text;not null;default:'draft'" json:"status"`
	IssueDate      time.Time         `json:"issue_date"`
	DueDate        time.Time         `json:"due_date"`
	Subtotal       string            `gorm:"type:numeric(12,2)" json:"subtotal"`
	TaxRate        string            `gorm:"type:numeric(5,2)" json:"tax_rate"`
	TaxAmount      string            `gorm:"type:numeric(12,2)" json:"tax_amount"`
	DiscountRate   string            `gorm:"type:numeric(5,2)" json:"discount_rate"`
	DiscountAmount string            `gorm:"type:numeric(12,2)" json:"discount_amount"`
	Total          string            `gorm:"type:numeric(12,2)" json:"total"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	Metadata       datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	Items          []LineItem        `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItem is one billable row of an invoice.
type LineItem struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id,string"`
	InvoiceID   snowflake.ID `gorm:"not null;index" json:"invoice_id,string"`
	Position    int          `gorm:"not null;default:0" json:"position"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Quantity    string       `gorm:"type:numeric(12,2)" json:"quantity"`
	Rate        string       `gorm:"type:numeric(12,2)" json:"rate"`
	Amount      string       `gorm:"type:numeric(12,2)" json:"amount"`
}

// TableName sets the database table name.
func (LineItem) TableName() string { return "invoice_line_items" }
