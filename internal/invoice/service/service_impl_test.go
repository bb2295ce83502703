package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
	"github.com/smallbiznis/invoicepilot/internal/invoice/render"
	invoicerepo "github.com/smallbiznis/invoicepilot/internal/invoice/repository"
	issuerdomain "github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	issuerrepo "github.com/smallbiznis/invoicepilot/internal/issuer/repository"
	issuersvc "github.com/smallbiznis/invoicepilot/internal/issuer/service"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&issuerdomain.Profile{},
		&invoicedomain.Client{},
		&invoicedomain.Invoice{},
		&invoicedomain.LineItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestService(t *testing.T, db *gorm.DB) invoicedomain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	log := zap.NewNop()
	issuer := issuersvc.NewService(db, issuerrepo.Provide(), node, log)
	return NewService(db, invoicerepo.Provide(), issuer, render.NewRenderer(log), nil, log)
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node) *invoicedomain.Invoice {
	t.Helper()
	client := invoicedomain.Client{
		ID:    node.Generate(),
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	invoice := invoicedomain.Invoice{
		ID:        node.Generate(),
		ClientID:  client.ID,
		Number:    "INV-1001",
		Status:    "sent",
		IssueDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:  "250.00",
		TaxRate:   "10.00",
		TaxAmount: "25.00",
		Total:     "275.00",
		Items: []invoicedomain.LineItem{
			{ID: node.Generate(), Position: 0, Description: "Consulting", Quantity: "5.00", Rate: "50.00", Amount: "250.00"},
		},
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return &invoice
}

func TestGetByIDInvalidID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	if _, err := svc.GetByID(context.Background(), "not-a-snowflake"); !errors.Is(err, invoicedomain.ErrInvalidInvoiceID) {
		t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	if _, err := svc.GetByID(context.Background(), "123456789"); !errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	invoice := seedInvoice(t, db, node)

	result, err := svc.RenderPDF(context.Background(), invoice.ID.String())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if result.FileName != "invoice-INV-1001.pdf" {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
	if !bytes.HasPrefix(result.Data, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", result.Data[:min(len(result.Data), 8)])
	}
}

func TestRenderPDFUsesIssuerTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	node, err := snowflake.NewNode(3)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	invoice := seedInvoice(t, db, node)

	profile := issuerdomain.Profile{
		ID:              node.Generate(),
		BusinessName:    "Studio North",
		InvoiceTemplate: "classic",
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	result, err := svc.RenderPDF(context.Background(), invoice.ID.String())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(result.Data, []byte("%PDF")) {
		t.Fatalf("expected PDF output")
	}
}
