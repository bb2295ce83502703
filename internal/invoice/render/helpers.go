package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var embeddableLogoFormats = map[string]bool{
	"PNG":  true,
	"JPG":  true,
	"JPEG": true,
	"GIF":  true,
}

// addLogo draws the configured logo inside the box whose bottom-left corner
// sits at (x, y). An unsupported format or a failed embed degrades to a
// styled placeholder so the layout never has a blank gap; no logo at all
// draws nothing.
func addLogo(s Surface, cfg Config, x, y, maxWidth, maxHeight float64) {
	if cfg.Logo == nil {
		return
	}
	format := strings.ToUpper(strings.TrimSpace(cfg.Logo.Format))
	if !embeddableLogoFormats[format] {
		logoPlaceholder(s, cfg, x, y, maxWidth, maxHeight)
		return
	}
	if err := s.Image(format, cfg.Logo.Data, x, y-maxHeight, maxWidth, maxHeight); err != nil {
		logoPlaceholder(s, cfg, x, y, maxWidth, maxHeight)
	}
}

// logoPlaceholder fills the logo box with a rounded rectangle in the primary
// brand color, a secondary-color border, and a centered "LOGO" mark.
func logoPlaceholder(s Surface, cfg Config, x, y, maxWidth, maxHeight float64) {
	pr, pg, pb := hexToRGB(cfg.Colors.Primary)
	sr, sg, sb := hexToRGB(cfg.Colors.Secondary)

	s.SetFillColor(pr, pg, pb)
	s.RoundedRect(x, y-maxHeight, maxWidth, maxHeight, 3, PaintFill)
	s.SetDrawColor(sr, sg, sb)
	s.SetLineWidth(0.5)
	s.RoundedRect(x, y-maxHeight, maxWidth, maxHeight, 3, PaintStroke)

	s.SetTextColor(255, 255, 255)
	s.SetFont(FontBold, math.Min(maxHeight*0.6, 16))
	s.Text("LOGO", x+maxWidth/2, y-maxHeight/2+2, AlignCenter)
}

// parseDecimal parses a decimal-as-string currency field. Non-numeric input
// degrades to 0 so a corrupt value renders as "$0.00" instead of failing.
func parseDecimal(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

func formatAmount(value string) string {
	return fmt.Sprintf("$%.2f", parseDecimal(value))
}

// splitAddress splits a newline-delimited address into display lines,
// dropping blank lines and preserving order.
func splitAddress(address string) []string {
	var lines []string
	for _, line := range strings.Split(address, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// truncate caps value at limit characters, appending an ellipsis when it was
// cut. Counted in runes. Table cells are never wrapped onto multiple lines.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("Jan 2, 2006")
}

// displayName resolves the issuer's display name, falling back from the
// business name to "first last".
func displayName(issuer Issuer) string {
	if name := strings.TrimSpace(issuer.BusinessName); name != "" {
		return name
	}
	return strings.TrimSpace(issuer.FirstName + " " + issuer.LastName)
}
