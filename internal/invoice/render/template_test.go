package render

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func testInvoice(itemCount int) Invoice {
	items := make([]LineItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Line item %03d", i+1),
			Quantity:    "1",
			Rate:        "50.00",
			Amount:      "50.00",
		})
	}
	return Invoice{
		Number:         "INV-0042",
		Status:         "sent",
		Subtotal:       "100.00",
		TaxRate:        "10",
		TaxAmount:      "10.00",
		DiscountRate:   "0",
		DiscountAmount: "0.00",
		Total:          "110.00",
		Client: Client{
			Name:  "Globex LLC",
			Email: "billing@globex.test",
		},
		Items: items,
	}
}

func testIssuer(template string) Issuer {
	return Issuer{
		BusinessName: "Acme Studio",
		Address:      "1 Infinite Loop\nCupertino",
		Email:        "hello@acme.test",
		Template:     template,
	}
}

func allTemplates() []Template {
	return []Template{&ModernTemplate{}, &ClassicTemplate{}, &MinimalTemplate{}}
}

// The totals block must always start below the last table row, no matter how
// many items the table holds: every template computes downstream positions
// from the accumulated table height.
func TestTotalsStartBelowTable(t *testing.T) {
	for _, tpl := range allTemplates() {
		for _, count := range []int{0, 1, 50} {
			surface := &fakeSurface{}
			tpl.Generate(surface, testInvoice(count), testIssuer(tpl.Name()), NewConfig(Issuer{}))

			subtotals := surface.textOps("Subtotal")
			if len(subtotals) != 1 {
				t.Fatalf("%s/%d items: expected one subtotal line, got %d", tpl.Name(), count, len(subtotals))
			}
			tableBottom := 0.0
			for _, op := range surface.textOps("Line item") {
				if op.y > tableBottom {
					tableBottom = op.y
				}
			}
			if count == 0 {
				// With no rows the header labels mark the bottom of the table.
				for _, label := range []string{"DESCRIPTION", "Description"} {
					for _, op := range surface.textOps(label) {
						if op.y > tableBottom {
							tableBottom = op.y
						}
					}
				}
			}
			if subtotals[0].y <= tableBottom {
				t.Fatalf("%s/%d items: subtotal at y=%.1f does not clear table bottom y=%.1f",
					tpl.Name(), count, subtotals[0].y, tableBottom)
			}
		}
	}
}

func TestTaxLineSuppressedWhenZero(t *testing.T) {
	for _, tpl := range allTemplates() {
		invoice := testInvoice(2)
		invoice.TaxAmount = "0.00"
		surface := &fakeSurface{}
		tpl.Generate(surface, invoice, testIssuer(tpl.Name()), NewConfig(Issuer{}))
		if ops := surface.textOps("Tax ("); len(ops) != 0 {
			t.Fatalf("%s: expected no tax line for zero tax, got %d", tpl.Name(), len(ops))
		}
	}
}

func TestTaxLineIncludesRate(t *testing.T) {
	for _, tpl := range allTemplates() {
		invoice := testInvoice(2)
		invoice.TaxRate = "10"
		invoice.TaxAmount = "15.00"
		surface := &fakeSurface{}
		tpl.Generate(surface, invoice, testIssuer(tpl.Name()), NewConfig(Issuer{}))
		ops := surface.textOps("Tax (10.0%)")
		if len(ops) != 1 {
			t.Fatalf("%s: expected exactly one tax line with formatted rate, got %d", tpl.Name(), len(ops))
		}
	}
}

func TestDiscountLineRenderedWithMinus(t *testing.T) {
	invoice := testInvoice(1)
	invoice.DiscountRate = "5"
	invoice.DiscountAmount = "5.00"
	for _, tpl := range allTemplates() {
		surface := &fakeSurface{}
		tpl.Generate(surface, invoice, testIssuer(tpl.Name()), NewConfig(Issuer{}))
		if ops := surface.textOps("-$5.00"); len(ops) != 1 {
			t.Fatalf("%s: expected one negative discount amount, got %d", tpl.Name(), len(ops))
		}
	}
}

func TestDescriptionTruncatedAtVariantCap(t *testing.T) {
	long := strings.Repeat("x", 46)
	fits := strings.Repeat("x", 44)
	invoice := testInvoice(0)
	invoice.Items = []LineItem{
		{Description: long, Quantity: "1", Rate: "1.00", Amount: "1.00"},
		{Description: fits, Quantity: "1", Rate: "1.00", Amount: "1.00"},
	}

	surface := &fakeSurface{}
	(&ClassicTemplate{}).Generate(surface, invoice, testIssuer("classic"), NewConfig(Issuer{}))

	if ops := surface.textOps(strings.Repeat("x", 45) + "..."); len(ops) != 1 {
		t.Fatalf("expected 46-char description cut to 45 plus ellipsis, got %d matches", len(ops))
	}
	found := false
	for _, op := range surface.textOps(fits) {
		if op.text == fits {
			found = true
		}
	}
	if !found {
		t.Fatal("expected 44-char description to render unmodified")
	}
}

func TestNotesCappedPerVariant(t *testing.T) {
	invoice := testInvoice(1)
	invoice.Notes = "one\ntwo\nthree\nfour\nfive"
	caps := map[string]int{"modern": 2, "classic": 3, "minimal": 3}
	for _, tpl := range allTemplates() {
		surface := &fakeSurface{}
		tpl.Generate(surface, invoice, testIssuer(tpl.Name()), NewConfig(Issuer{}))
		rendered := 0
		for _, word := range []string{"one", "two", "three", "four", "five"} {
			for _, op := range surface.textOps(word) {
				if op.text == word {
					rendered++
				}
			}
		}
		if rendered != caps[tpl.Name()] {
			t.Fatalf("%s: expected %d note lines, got %d", tpl.Name(), caps[tpl.Name()], rendered)
		}
	}
}

func TestUnsupportedLogoFormatDrawsPlaceholder(t *testing.T) {
	issuer := testIssuer("modern")
	issuer.LogoDataURI = "data:image/bmp;base64,aGVsbG8="
	cfg := NewConfig(issuer)

	surface := &fakeSurface{}
	(&ModernTemplate{}).Generate(surface, testInvoice(1), issuer, cfg)

	if surface.images != 0 {
		t.Fatalf("expected no image embed attempt for BMP, got %d", surface.images)
	}
	if ops := surface.textOps("LOGO"); len(ops) != 1 {
		t.Fatalf("expected placeholder LOGO mark, got %d", len(ops))
	}
}

func TestFailedLogoEmbedFallsBackToPlaceholder(t *testing.T) {
	issuer := testIssuer("modern")
	issuer.LogoDataURI = "data:image/png;base64,aGVsbG8="
	cfg := NewConfig(issuer)

	surface := &fakeSurface{imageErr: errImageRejected}
	(&ModernTemplate{}).Generate(surface, testInvoice(1), issuer, cfg)

	if surface.images != 1 {
		t.Fatalf("expected one embed attempt, got %d", surface.images)
	}
	if ops := surface.textOps("LOGO"); len(ops) != 1 {
		t.Fatalf("expected placeholder LOGO mark after failed embed, got %d", len(ops))
	}
}

func TestCorruptAmountsDegradeToZero(t *testing.T) {
	invoice := testInvoice(0)
	invoice.Items = []LineItem{{Description: "Broken", Quantity: "2", Rate: "oops", Amount: "oops"}}
	invoice.Subtotal = "not-a-number"

	surface := &fakeSurface{}
	(&ModernTemplate{}).Generate(surface, invoice, testIssuer("modern"), NewConfig(Issuer{}))

	if ops := surface.textOps("$0.00"); len(ops) < 3 {
		t.Fatalf("expected corrupt amounts to render as $0.00, got %d occurrences", len(ops))
	}
}

func TestDueDateAlwaysRendered(t *testing.T) {
	invoice := testInvoice(1)
	invoice.DueDate = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	for _, tpl := range allTemplates() {
		surface := &fakeSurface{}
		tpl.Generate(surface, invoice, testIssuer(tpl.Name()), NewConfig(Issuer{}))
		if ops := surface.textOps("Mar 15, 2025"); len(ops) == 0 {
			t.Fatalf("%s: expected the due date to be rendered", tpl.Name())
		}
	}
}
