package render

import (
	"time"

	"go.uber.org/zap"
)

// Invoice is the deterministic input used for invoice rendering. Monetary
// fields carry decimal-as-string values with 2-decimal currency semantics;
// the renderer trusts the caller to have computed them consistently.
type Invoice struct {
	Number         string
	IssueDate      time.Time
	DueDate        time.Time
	Status         string
	Subtotal       string
	TaxRate        string
	TaxAmount      string
	DiscountRate   string
	DiscountAmount string
	Total          string
	Notes          string
	Client         Client
	Items          []LineItem
}

// LineItem is one billable row.
type LineItem struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// Client is the invoice recipient's billing identity.
type Client struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// Issuer is the business generating the invoice, including its branding.
type Issuer struct {
	BusinessName   string
	FirstName      string
	LastName       string
	Address        string
	Email          string
	Phone          string
	TaxID          string
	LogoDataURI    string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	Template       string
}

// Renderer resolves a template from the registry and runs it against a fresh
// drawing surface. It holds no per-render state, so a single renderer may
// serve concurrent calls.
type Renderer struct {
	registry   *Registry
	newSurface func() Surface
	log        *zap.Logger
}

// NewRenderer builds a renderer with the built-in template set.
func NewRenderer(log *zap.Logger) *Renderer {
	return &Renderer{
		registry:   NewRegistry(),
		newSurface: NewPDFSurface,
		log:        log,
	}
}

// Registry exposes the template registry for selection endpoints.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Generate renders the invoice with the issuer's chosen template and returns
// the finished document bytes. Template internals default every recoverable
// problem locally; only surface serialization failures propagate.
func (r *Renderer) Generate(invoice Invoice, issuer Issuer) ([]byte, error) {
	cfg := NewConfig(issuer)

	name := issuer.Template
	if name == "" {
		name = DefaultTemplate
	}
	tpl := r.registry.Get(name)
	if tpl.Name() != name {
		r.log.Warn("unknown invoice template, using default",
			zap.String("template", name),
			zap.String("fallback", tpl.Name()),
		)
	}

	surface := r.newSurface()
	tpl.Generate(surface, invoice, issuer, cfg)
	return surface.Output()
}
