package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
	"gorm.io/gorm"
)

// EnsureSampleData seeds a demo client and invoice when the database is
// empty. Meant for development startup so the render endpoints have
// something to serve.
func EnsureSampleData(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed snowflake node is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&invoicedomain.Invoice{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		client := invoicedomain.Client{
			ID:      node.Generate(),
			Name:    "Sample Client",
			Email:   "client@example.com",
			Address: "42 Example Street\nSpringfield",
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		now := time.Now().UTC().Truncate(24 * time.Hour)
		invoice := invoicedomain.Invoice{
			ID:        node.Generate(),
			ClientID:  client.ID,
			Number:    "INV-0001",
			Status:    "draft",
			IssueDate: now,
			DueDate:   now.AddDate(0, 0, 30),
			Subtotal:  "150.00",
			TaxRate:   "0.00",
			TaxAmount: "0.00",
			Total:     "150.00",
			Notes:     "Thank you for your business.",
			Items: []invoicedomain.LineItem{
				{
					ID:          node.Generate(),
					Position:    0,
					Description: "Consulting services",
					Quantity:    "3.00",
					Rate:        "50.00",
					Amount:      "150.00",
				},
			},
		}
		return tx.Create(&invoice).Error
	})
}
