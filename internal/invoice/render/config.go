package render

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// Default brand palette, used whenever the issuer has not customized branding.
const (
	DefaultPrimaryColor   = "#3b82f6"
	DefaultSecondaryColor = "#1e40af"
	DefaultAccentColor    = "#10b981"
)

// Colors is the three-color theme a template paints with.
type Colors struct {
	Primary   string
	Secondary string
	Accent    string
}

// FontScale holds the point sizes a template picks from.
type FontScale struct {
	Header float64
	Title  float64
	Body   float64
	Small  float64
}

// Logo is an embeddable raster payload decoded from a data URI.
type Logo struct {
	Format string
	Data   []byte
}

// Config carries the per-render theming derived from issuer branding.
// It is built fresh for every render and discarded afterwards.
type Config struct {
	Colors Colors
	Logo   *Logo
	Fonts  FontScale
}

var logoDataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z]+);base64,(.+)$`)

// ParseLogoDataURI decodes a "data:image/<fmt>;base64,<payload>" URI.
// Anything that does not parse cleanly yields nil, which downstream
// logo placement treats as "no logo".
func ParseLogoDataURI(uri string) *Logo {
	matches := logoDataURIPattern.FindStringSubmatch(strings.TrimSpace(uri))
	if matches == nil {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return nil
	}
	return &Logo{Format: strings.ToUpper(matches[1]), Data: data}
}

// NewConfig builds the render config from issuer branding, substituting
// defaults for any field the issuer left unset.
func NewConfig(issuer Issuer) Config {
	cfg := Config{
		Colors: Colors{
			Primary:   DefaultPrimaryColor,
			Secondary: DefaultSecondaryColor,
			Accent:    DefaultAccentColor,
		},
		Fonts: FontScale{Header: 24, Title: 16, Body: 11, Small: 9},
	}
	if color := strings.TrimSpace(issuer.PrimaryColor); color != "" {
		cfg.Colors.Primary = color
	}
	if color := strings.TrimSpace(issuer.SecondaryColor); color != "" {
		cfg.Colors.Secondary = color
	}
	if color := strings.TrimSpace(issuer.AccentColor); color != "" {
		cfg.Colors.Accent = color
	}
	cfg.Logo = ParseLogoDataURI(issuer.LogoDataURI)
	return cfg
}
