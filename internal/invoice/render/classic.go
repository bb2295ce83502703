package render

import (
	"fmt"
	"strings"
)

// ClassicTemplate renders a formal, centered letterhead with ruled ornaments,
// a fully bordered item table, and a double-bordered totals box.
type ClassicTemplate struct{}

func (t *ClassicTemplate) Name() string { return "classic" }

const (
	classicDescriptionLimit = 45
	classicAddressLimit     = 40
	classicNoteLimit        = 90
	classicNoteLines        = 3
)

func (t *ClassicTemplate) Generate(s Surface, invoice Invoice, issuer Issuer, cfg Config) {
	pr, pg, pb := hexToRGB(cfg.Colors.Primary)
	sr, sg, sb := hexToRGB(cfg.Colors.Secondary)
	ar, ag, ab := hexToRGB(cfg.Colors.Accent)

	// Centered wordmark with stacked rules of decreasing width.
	s.SetTextColor(pr, pg, pb)
	s.SetFont(FontBold, cfg.Fonts.Header)
	s.Text("INVOICE", 105, 25, AlignCenter)

	s.SetDrawColor(pr, pg, pb)
	s.SetLineWidth(1)
	s.Line(65, 30, 145, 30)
	s.SetLineWidth(0.6)
	s.Line(75, 33, 135, 33)
	s.SetLineWidth(0.3)
	s.Line(85, 36, 125, 36)

	// Centered logo under the rules.
	if cfg.Logo != nil {
		addLogo(s, cfg, 85, 60, 40, 18)
	}

	// Centered letterhead.
	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, cfg.Fonts.Title)
	s.Text(displayName(issuer), 105, 68, AlignCenter)

	s.SetFont(FontNormal, cfg.Fonts.Small)
	yPos := 75.0
	if issuer.Address != "" {
		for _, line := range splitAddress(issuer.Address) {
			s.Text(line, 105, yPos, AlignCenter)
			yPos += 5
		}
	}
	if issuer.Email != "" {
		s.Text("Email: "+issuer.Email, 105, yPos, AlignCenter)
		yPos += 5
	}
	if issuer.Phone != "" {
		s.Text("Phone: "+issuer.Phone, 105, yPos, AlignCenter)
		yPos += 5
	}
	if issuer.TaxID != "" {
		s.Text("Tax ID: "+issuer.TaxID, 105, yPos, AlignCenter)
	}

	// Bill-to on the left, invoice metadata on the right.
	yPos = 108
	s.SetTextColor(sr, sg, sb)
	s.SetFont(FontBold, cfg.Fonts.Body)
	s.Text("BILL TO:", 20, yPos, AlignLeft)
	s.SetLineWidth(0.5)
	s.SetDrawColor(sr, sg, sb)
	s.Line(20, yPos+2, 60, yPos+2)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Invoice Number: "+invoice.Number, 190, yPos, AlignRight)
	s.Text("Invoice Date: "+formatDate(invoice.IssueDate), 190, yPos+6, AlignRight)
	s.SetFont(FontBold, cfg.Fonts.Small)
	s.SetTextColor(pr, pg, pb)
	s.Text("Due Date: "+formatDate(invoice.DueDate), 190, yPos+12, AlignRight)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, cfg.Fonts.Body)
	s.Text(invoice.Client.Name, 20, yPos+10, AlignLeft)

	s.SetFont(FontNormal, cfg.Fonts.Small)
	lineY := yPos + 18
	if invoice.Client.Address != "" {
		for _, line := range splitAddress(invoice.Client.Address) {
			s.Text(truncate(line, classicAddressLimit), 20, lineY, AlignLeft)
			lineY += 5
		}
	}
	s.Text(invoice.Client.Email, 20, lineY, AlignLeft)
	if invoice.Client.Phone != "" {
		s.Text(invoice.Client.Phone, 20, lineY+5, AlignLeft)
	}

	// Ruled item table with full cell borders and column separators. The
	// table height drives both the separator length and every block below.
	yPos = 150
	const rowHeight = 10.0
	tableHeight := rowHeight + float64(len(invoice.Items))*rowHeight

	s.SetFillColor(240, 240, 240)
	s.Rect(20, yPos, 170, rowHeight, PaintFill)
	s.SetDrawColor(0, 0, 0)
	s.SetLineWidth(0.5)
	s.Rect(20, yPos, 170, rowHeight, PaintStroke)

	s.SetTextColor(0, 0, 0)
	s.SetFont(FontBold, cfg.Fonts.Small)
	s.Text("Description", 25, yPos+7, AlignLeft)
	s.Text("Qty", 120, yPos+7, AlignLeft)
	s.Text("Rate", 140, yPos+7, AlignLeft)
	s.Text("Amount", 165, yPos+7, AlignLeft)

	for _, x := range []float64{115, 135, 155} {
		s.Line(x, yPos, x, yPos+tableHeight)
	}

	yPos += rowHeight
	for i, item := range invoice.Items {
		if i%2 == 1 {
			s.SetFillColor(248, 248, 248)
			s.Rect(20, yPos, 170, rowHeight, PaintFill)
		}
		s.Rect(20, yPos, 170, rowHeight, PaintStroke)
		s.SetFont(FontNormal, cfg.Fonts.Small)
		s.Text(truncate(item.Description, classicDescriptionLimit), 25, yPos+7, AlignLeft)
		s.Text(item.Quantity, 120, yPos+7, AlignCenter)
		s.Text(formatAmount(item.Rate), 140, yPos+7, AlignCenter)
		s.SetFont(FontBold, cfg.Fonts.Small)
		s.Text(formatAmount(item.Amount), 165, yPos+7, AlignCenter)
		yPos += rowHeight
	}

	// Totals in a double-bordered box sized by the lines actually rendered.
	yPos += 10
	totalLines := 1
	if parseDecimal(invoice.TaxAmount) > 0 {
		totalLines++
	}
	if parseDecimal(invoice.DiscountAmount) > 0 {
		totalLines++
	}
	boxTop := yPos
	boxHeight := float64(totalLines)*8 + 18

	s.SetDrawColor(0, 0, 0)
	s.SetLineWidth(0.8)
	s.Rect(115, boxTop, 75, boxHeight, PaintStroke)
	s.SetLineWidth(0.3)
	s.Rect(116.5, boxTop+1.5, 72, boxHeight-3, PaintStroke)

	lineY = boxTop + 8
	s.SetTextColor(0, 0, 0)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Subtotal:", 120, lineY, AlignLeft)
	s.Text(formatAmount(invoice.Subtotal), 185, lineY, AlignRight)
	lineY += 8

	if parseDecimal(invoice.TaxAmount) > 0 {
		s.Text(fmt.Sprintf("Tax (%.1f%%):", parseDecimal(invoice.TaxRate)), 120, lineY, AlignLeft)
		s.Text(formatAmount(invoice.TaxAmount), 185, lineY, AlignRight)
		lineY += 8
	}

	if parseDecimal(invoice.DiscountAmount) > 0 {
		s.SetTextColor(ar, ag, ab)
		s.Text(fmt.Sprintf("Discount (%.1f%%):", parseDecimal(invoice.DiscountRate)), 120, lineY, AlignLeft)
		s.Text("-"+formatAmount(invoice.DiscountAmount), 185, lineY, AlignRight)
		s.SetTextColor(0, 0, 0)
		lineY += 8
	}

	// Total with the classic accounting double underline.
	lineY += 4
	s.SetFont(FontBold, cfg.Fonts.Body)
	s.SetTextColor(pr, pg, pb)
	s.Text("TOTAL:", 120, lineY, AlignLeft)
	s.Text(formatAmount(invoice.Total), 185, lineY, AlignRight)
	s.SetDrawColor(pr, pg, pb)
	s.SetLineWidth(0.5)
	s.Line(120, lineY+2, 185, lineY+2)
	s.Line(120, lineY+3.5, 185, lineY+3.5)
	yPos = boxTop + boxHeight

	// Boxed notes.
	if strings.TrimSpace(invoice.Notes) != "" {
		yPos += 10
		s.SetDrawColor(0, 0, 0)
		s.SetLineWidth(0.5)
		s.Rect(20, yPos, 170, 25, PaintStroke)

		s.SetTextColor(0, 0, 0)
		s.SetFont(FontBold, cfg.Fonts.Small)
		s.Text("Notes:", 25, yPos+8, AlignLeft)

		s.SetFont(FontNormal, cfg.Fonts.Small)
		lines := strings.Split(invoice.Notes, "\n")
		if len(lines) > classicNoteLines {
			lines = lines[:classicNoteLines]
		}
		for i, line := range lines {
			s.Text(truncate(line, classicNoteLimit), 25, yPos+15+float64(i)*5, AlignLeft)
		}
	}

	// Fixed footer anchor, independent of the cursor.
	s.SetTextColor(120, 120, 120)
	s.SetFont(FontNormal, cfg.Fonts.Small)
	s.Text("Thank you for your business", 105, 278, AlignCenter)
}
