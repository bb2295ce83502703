package render

import (
	"fmt"
	"math"
	"strings"
)

// ModernTemplate lays the invoice out with a gradient header band, rounded
// cards with drop shadows, and a zebra-striped item table.
type ModernTemplate struct{}

func (t *ModernTemplate) Name() string { return "modern" }

const (
	modernDescriptionLimit = 35
	modernBillToLimit      = 25
	modernNoteLimit        = 80
	modernNoteLines        = 2
)

func (t *ModernTemplate) Generate(s Surface, invoice Invoice, issuer Issuer, cfg Config) {
	pr, pg, pb := hexToRGB(cfg.Colors.Primary)
	sr, sg, sb := hexToRGB(cfg.Colors.Secondary)
	ar, ag, ab := hexToRGB(cfg.Colors.Accent)

	// Header band. The surface has no native gradients, so one is simulated
	// by stacking 1mm strips interpolating primary to secondary.
	const bandSteps = 30
	for i := 0; i < bandSteps; i++ {
		frac := float64(i) / float64(bandSteps-1)
		s.SetFillColor(blendChannel(pr, sr, frac), blendChannel(pg, sg, frac), blendChannel(pb, sb, frac))
		s.Rect(0, float64(i), 210, 1, PaintFill)
	}

	s.SetTextColor(255, 255, 255)
	s.SetFont(FontBold, cfg.Fonts.Header)
	s.Text("INVOICE", 20, 22, AlignLeft)

	// Issuer block.
	yPos := 50.0
	addLogo(s, cfg, 20, yPos, 50, 25)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, cfg.Fonts.Title)
	s.Text(displayName(issuer), 20, yPos+35, AlignLeft)

	yPos += 45
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.SetTextColor(80, 80, 80)
	if issuer.Address != "" {
		lines := splitAddress(issuer.Address)
		for i, line := range lines {
			s.Text(line, 20, yPos+float64(i)*4, AlignLeft)
		}
		yPos += float64(len(lines))*4 + 6
	}
	if issuer.Email != "" {
		s.Text(issuer.Email, 20, yPos, AlignLeft)
		yPos += 5
	}
	if issuer.Phone != "" {
		s.Text(issuer.Phone, 20, yPos, AlignLeft)
		yPos += 5
	}
	if issuer.TaxID != "" {
		s.SetTextColor(120, 120, 120)
		s.Text("Tax ID: "+issuer.TaxID, 20, yPos, AlignLeft)
	}

	// Invoice details card, shadow first, then the card on top.
	s.SetFillColor(215, 215, 215)
	s.RoundedRect(131.5, 51.5, 65, 45, 4, PaintFill)
	s.SetFillColor(245, 245, 245)
	s.RoundedRect(130, 50, 65, 45, 4, PaintFill)
	s.SetDrawColor(200, 200, 200)
	s.SetLineWidth(0.5)
	s.RoundedRect(130, 50, 65, 45, 4, PaintStroke)

	s.SetTextColor(pr, pg, pb)
	s.SetFont(FontBold, 10)
	s.Text("INVOICE DETAILS", 135, 60, AlignLeft)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, 14)
	s.Text("#"+invoice.Number, 135, 72, AlignLeft)

	s.SetFont(FontNormal, 8)
	s.SetTextColor(100, 100, 100)
	s.Text("Issue Date:", 135, 80, AlignLeft)
	s.SetTextColor(0, 0, 0)
	s.Text(formatDate(invoice.IssueDate), 135, 86, AlignLeft)

	s.SetTextColor(100, 100, 100)
	s.Text("Due Date:", 135, 90, AlignLeft)
	s.SetTextColor(ar, ag, ab)
	s.SetFont(FontBold, 8)
	s.Text(formatDate(invoice.DueDate), 135, 96, AlignLeft)

	// Bill-to card.
	yPos = 110
	s.SetFillColor(215, 215, 215)
	s.RoundedRect(21.5, yPos+1.5, 75, 35, 4, PaintFill)
	s.SetFillColor(248, 248, 248)
	s.RoundedRect(20, yPos, 75, 35, 4, PaintFill)
	s.SetDrawColor(220, 220, 220)
	s.SetLineWidth(0.5)
	s.RoundedRect(20, yPos, 75, 35, 4, PaintStroke)

	s.SetTextColor(sr, sg, sb)
	s.SetFont(FontBold, 10)
	s.Text("BILL TO", 25, yPos+10, AlignLeft)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, 12)
	s.Text(invoice.Client.Name, 25, yPos+20, AlignLeft)

	s.SetFont(FontNormal, 8)
	s.SetTextColor(80, 80, 80)
	if lines := splitAddress(invoice.Client.Address); len(lines) > 0 {
		s.Text(truncate(lines[0], modernBillToLimit), 25, yPos+28, AlignLeft)
	}
	s.Text(truncate(invoice.Client.Email, modernBillToLimit), 25, yPos+33, AlignLeft)

	// Line-item table. Row height is fixed; everything below the table is
	// positioned from the running cursor, never from constants.
	yPos = 160
	const rowHeight = 12.0

	s.SetFillColor(pr, pg, pb)
	s.Rect(20, yPos, 170, rowHeight, PaintFill)
	s.SetTextColor(255, 255, 255)
	s.SetFont(FontBold, 9)
	s.Text("DESCRIPTION", 25, yPos+8, AlignLeft)
	s.Text("QTY", 115, yPos+8, AlignCenter)
	s.Text("RATE", 135, yPos+8, AlignCenter)
	s.Text("AMOUNT", 175, yPos+8, AlignRight)

	yPos += 15
	for i, item := range invoice.Items {
		if i%2 == 1 {
			s.SetFillColor(248, 248, 248)
			s.Rect(20, yPos-2, 170, rowHeight, PaintFill)
		}
		s.SetTextColor(0, 0, 0)
		s.SetFont(FontNormal, 9)
		s.Text(truncate(item.Description, modernDescriptionLimit), 25, yPos+6, AlignLeft)
		s.Text(item.Quantity, 115, yPos+6, AlignCenter)
		s.Text(formatAmount(item.Rate), 135, yPos+6, AlignCenter)
		s.SetFont(FontBold, 9)
		s.Text(formatAmount(item.Amount), 175, yPos+6, AlignRight)
		yPos += rowHeight
	}

	// Totals.
	yPos += 15
	const totalsX = 120.0

	s.SetTextColor(80, 80, 80)
	s.SetFont(FontNormal, 10)
	s.Text("Subtotal:", totalsX, yPos, AlignLeft)
	s.SetFont(FontBold, 10)
	s.SetTextColor(0, 0, 0)
	s.Text(formatAmount(invoice.Subtotal), 185, yPos, AlignRight)
	yPos += 12

	if parseDecimal(invoice.TaxAmount) > 0 {
		s.SetFont(FontNormal, 10)
		s.SetTextColor(80, 80, 80)
		s.Text(fmt.Sprintf("Tax (%.1f%%):", parseDecimal(invoice.TaxRate)), totalsX, yPos, AlignLeft)
		s.SetFont(FontBold, 10)
		s.SetTextColor(0, 0, 0)
		s.Text(formatAmount(invoice.TaxAmount), 185, yPos, AlignRight)
		yPos += 12
	}

	if parseDecimal(invoice.DiscountAmount) > 0 {
		s.SetFont(FontNormal, 10)
		s.SetTextColor(ar, ag, ab)
		s.Text(fmt.Sprintf("Discount (%.1f%%):", parseDecimal(invoice.DiscountRate)), totalsX, yPos, AlignLeft)
		s.SetFont(FontBold, 10)
		s.Text("-"+formatAmount(invoice.DiscountAmount), 185, yPos, AlignRight)
		yPos += 12
	}

	yPos += 5
	s.SetFillColor(ar, ag, ab)
	s.Rect(totalsX, yPos-3, 70, 16, PaintFill)
	s.SetTextColor(255, 255, 255)
	s.SetFont(FontBold, 12)
	s.Text("TOTAL:", totalsX+5, yPos+8, AlignLeft)
	s.SetFont(FontBold, 14)
	s.Text(formatAmount(invoice.Total), 185, yPos+8, AlignRight)

	// Notes.
	if strings.TrimSpace(invoice.Notes) != "" {
		yPos += 25
		s.SetTextColor(sr, sg, sb)
		s.SetFont(FontBold, 10)
		s.Text("NOTES:", 20, yPos, AlignLeft)

		s.SetTextColor(60, 60, 60)
		s.SetFont(FontNormal, 9)
		lines := strings.Split(invoice.Notes, "\n")
		if len(lines) > modernNoteLines {
			lines = lines[:modernNoteLines]
		}
		for i, line := range lines {
			s.Text(truncate(line, modernNoteLimit), 20, yPos+10+float64(i)*6, AlignLeft)
		}
	}

	// Footer: fixed anchor near the page bottom. A very long item list can
	// run into it; there is no pagination.
	s.SetTextColor(120, 120, 120)
	s.SetFont(FontNormal, 9)
	s.Text("Thank you for your business!", 105, 270, AlignCenter)
}

// blendChannel interpolates one color channel for the simulated gradient.
func blendChannel(from, to int, frac float64) int {
	return from + int(math.Round(float64(to-from)*frac))
}
