package render

import (
	"fmt"
	"strings"
)

// MinimalTemplate uses no fills and no borders. Structure comes from
// whitespace; emphasis comes from size and color alone.
type MinimalTemplate struct{}

func (t *MinimalTemplate) Name() string { return "minimal" }

const (
	minimalDescriptionLimit = 45
	minimalNoteLimit        = 90
	minimalNoteLines        = 3
)

func (t *MinimalTemplate) Generate(s Surface, invoice Invoice, issuer Issuer, cfg Config) {
	pr, pg, pb := hexToRGB(cfg.Colors.Primary)
	ar, ag, ab := hexToRGB(cfg.Colors.Accent)

	// Wordmark with a thin accent underline, the only header decoration.
	s.SetTextColor(pr, pg, pb)
	s.SetFont(FontNormal, cfg.Fonts.Header)
	s.Text("Invoice", 20, 30, AlignLeft)
	s.SetDrawColor(ar, ag, ab)
	s.SetLineWidth(0.6)
	s.Line(20, 34, 60, 34)

	if cfg.Logo != nil {
		addLogo(s, cfg, 160, 30, 30, 12)
	}

	// Issuer identity, single contact line when possible.
	s.SetTextColor(0, 0, 0)
	s.SetFont(FontNormal, cfg.Fonts.Body)
	s.Text(displayName(issuer), 20, 45, AlignLeft)

	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.SetTextColor(120, 120, 120)
	var contact []string
	if issuer.Email != "" {
		contact = append(contact, issuer.Email)
	}
	if issuer.Phone != "" {
		contact = append(contact, issuer.Phone)
	}
	if len(contact) > 0 {
		s.Text(strings.Join(contact, " - "), 20, 52, AlignLeft)
	}

	// Invoice metadata; the due date carries the only emphasis.
	s.SetTextColor(0, 0, 0)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("#"+invoice.Number, 20, 70, AlignLeft)
	s.Text(formatDate(invoice.IssueDate), 20, 77, AlignLeft)
	s.SetTextColor(ar, ag, ab)
	s.SetFont(FontBold, cfg.Fonts.Small)
	s.Text("Due "+formatDate(invoice.DueDate), 20, 84, AlignLeft)

	// Bill-to.
	s.SetTextColor(pr, pg, pb)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("To", 20, 100, AlignLeft)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontNormal, cfg.Fonts.Body)
	s.Text(invoice.Client.Name, 20, 110, AlignLeft)

	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.SetTextColor(120, 120, 120)
	s.Text(invoice.Client.Email, 20, 117, AlignLeft)

	// Borderless table; a single accent rule separates the header row.
	yPos := 140.0
	s.SetTextColor(120, 120, 120)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Description", 20, yPos, AlignLeft)
	s.Text("Qty", 120, yPos, AlignLeft)
	s.Text("Rate", 140, yPos, AlignLeft)
	s.Text("Amount", 170, yPos, AlignLeft)

	s.SetDrawColor(ar, ag, ab)
	s.SetLineWidth(0.3)
	s.Line(20, yPos+3, 190, yPos+3)

	yPos += 15
	for _, item := range invoice.Items {
		s.SetTextColor(0, 0, 0)
		s.SetFont(FontNormal, cfg.Fonts.Small)
		s.Text(truncate(item.Description, minimalDescriptionLimit), 20, yPos, AlignLeft)
		s.Text(item.Quantity, 120, yPos, AlignLeft)
		s.Text(formatAmount(item.Rate), 140, yPos, AlignLeft)
		s.SetFont(FontBold, cfg.Fonts.Small)
		s.Text(formatAmount(item.Amount), 170, yPos, AlignLeft)
		yPos += 12
	}

	// Totals, set off by whitespace only.
	yPos += 10
	s.SetTextColor(120, 120, 120)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Subtotal", 140, yPos, AlignLeft)
	s.Text(formatAmount(invoice.Subtotal), 170, yPos, AlignLeft)
	yPos += 8

	if parseDecimal(invoice.TaxAmount) > 0 {
		s.Text(fmt.Sprintf("Tax (%.1f%%)", parseDecimal(invoice.TaxRate)), 140, yPos, AlignLeft)
		s.Text(formatAmount(invoice.TaxAmount), 170, yPos, AlignLeft)
		yPos += 8
	}

	if parseDecimal(invoice.DiscountAmount) > 0 {
		s.SetTextColor(ar, ag, ab)
		s.Text(fmt.Sprintf("Discount (%.1f%%)", parseDecimal(invoice.DiscountRate)), 140, yPos, AlignLeft)
		s.Text("-"+formatAmount(invoice.DiscountAmount), 170, yPos, AlignLeft)
		s.SetTextColor(120, 120, 120)
		yPos += 8
	}

	s.SetTextColor(ar, ag, ab)
	s.SetFont(FontNormal, cfg.Fonts.Body)
	s.Text("Total", 140, yPos+10, AlignLeft)
	s.Text(formatAmount(invoice.Total), 170, yPos+10, AlignLeft)
	yPos += 10

	// Notes.
	if strings.TrimSpace(invoice.Notes) != "" {
		yPos += 20
		s.SetTextColor(120, 120, 120)
		s.SetFont(FontNormal, cfg.Fonts.Small)
		s.Text("Notes", 20, yPos, AlignLeft)

		s.SetTextColor(0, 0, 0)
		lines := strings.Split(invoice.Notes, "\n")
		if len(lines) > minimalNoteLines {
			lines = lines[:minimalNoteLines]
		}
		for i, line := range lines {
			s.Text(truncate(line, minimalNoteLimit), 20, yPos+10+float64(i)*6, AlignLeft)
		}
	}

	// Fixed footer anchor.
	s.SetTextColor(180, 180, 180)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Thank you for your business", 105, 280, AlignCenter)
}
