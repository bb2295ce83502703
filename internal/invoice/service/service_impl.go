package service

import (
	"context"
	"fmt"
	"time"

	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
	"github.com/smallbiznis/invoicepilot/internal/invoice/render"
	issuerdomain "github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	"github.com/smallbiznis/invoicepilot/internal/observability/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db        *gorm.DB
	repo      invoicedomain.Repository
	issuerSvc issuerdomain.Service
	renderer  *render.Renderer
	metrics   *metrics.RenderMetrics
	log       *zap.Logger
}

// NewService builds the invoice service.
func NewService(
	db *gorm.DB,
	repo invoicedomain.Repository,
	issuerSvc issuerdomain.Service,
	renderer *render.Renderer,
	renderMetrics *metrics.RenderMetrics,
	log *zap.Logger,
) invoicedomain.Service {
	return &Service{
		db:        db,
		repo:      repo,
		issuerSvc: issuerSvc,
		renderer:  renderer,
		metrics:   renderMetrics,
		log:       log,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	parsed, err := invoicedomain.ParseID(id)
	if err != nil {
		return nil, invoicedomain.ErrInvalidInvoiceID
	}
	return s.repo.FindByID(ctx, s.db, parsed)
}

// RenderPDF loads the invoice with its items and client, joins in the
// issuer's branding, and renders the document with the issuer's chosen
// template.
func (s *Service) RenderPDF(ctx context.Context, id string) (*invoicedomain.RenderResult, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.issuerSvc.Get(ctx)
	if err != nil {
		return nil, err
	}

	input := toRenderInvoice(invoice)
	issuer := toRenderIssuer(profile)

	start := time.Now()
	data, err := s.renderer.Generate(input, issuer)
	s.metrics.RecordRender(ctx, profile.InvoiceTemplate, err == nil, time.Since(start))
	if err != nil {
		s.log.Error("invoice render failed",
			zap.String("invoice_id", id),
			zap.String("template", profile.InvoiceTemplate),
			zap.Error(err),
		)
		return nil, err
	}

	return &invoicedomain.RenderResult{
		FileName: fmt.Sprintf("invoice-%s.pdf", invoice.Number),
		Data:     data,
	}, nil
}

func toRenderInvoice(invoice *invoicedomain.Invoice) render.Invoice {
	items := make([]render.LineItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, render.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}
	return render.Invoice{
		Number:         invoice.Number,
		IssueDate:      invoice.IssueDate,
		DueDate:        invoice.DueDate,
		Status:         invoice.Status,
		Subtotal:       invoice.Subtotal,
		TaxRate:        invoice.TaxRate,
		TaxAmount:      invoice.TaxAmount,
		DiscountRate:   invoice.DiscountRate,
		DiscountAmount: invoice.DiscountAmount,
		Total:          invoice.Total,
		Notes:          invoice.Notes,
		Client: render.Client{
			Name:    invoice.Client.Name,
			Email:   invoice.Client.Email,
			Address: invoice.Client.Address,
			Phone:   invoice.Client.Phone,
		},
		Items: items,
	}
}

func toRenderIssuer(profile *issuerdomain.Profile) render.Issuer {
	return render.Issuer{
		BusinessName:   profile.BusinessName,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Address:        profile.Address,
		Email:          profile.Email,
		Phone:          profile.Phone,
		TaxID:          profile.TaxID,
		LogoDataURI:    profile.LogoDataURI,
		PrimaryColor:   profile.PrimaryColor,
		SecondaryColor: profile.SecondaryColor,
		AccentColor:    profile.AccentColor,
		Template:       profile.InvoiceTemplate,
	}
}
