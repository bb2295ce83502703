package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// pdfSurface implements Surface on top of gofpdf. One surface owns one
// single-page document; auto page breaks are disabled because templates
// position every block with absolute coordinates.
type pdfSurface struct {
	doc        *gofpdf.Fpdf
	imageCount int
}

// NewPDFSurface returns a fresh A4 portrait surface in millimetre units.
func NewPDFSurface() Surface {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	return &pdfSurface{doc: doc}
}

func (s *pdfSurface) SetFillColor(r, g, b int) { s.doc.SetFillColor(r, g, b) }
func (s *pdfSurface) SetDrawColor(r, g, b int) { s.doc.SetDrawColor(r, g, b) }
func (s *pdfSurface) SetTextColor(r, g, b int) { s.doc.SetTextColor(r, g, b) }

func (s *pdfSurface) SetFont(style FontStyle, size float64) {
	s.doc.SetFont("Helvetica", string(style), size)
}

func (s *pdfSurface) SetLineWidth(width float64) { s.doc.SetLineWidth(width) }

func (s *pdfSurface) Rect(x, y, w, h float64, paint Paint) {
	s.doc.Rect(x, y, w, h, string(paint))
}

func (s *pdfSurface) RoundedRect(x, y, w, h, radius float64, paint Paint) {
	s.doc.RoundedRect(x, y, w, h, radius, "1234", string(paint))
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64) {
	s.doc.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) Text(value string, x, y float64, align Align) {
	switch align {
	case AlignCenter:
		x -= s.doc.GetStringWidth(value) / 2
	case AlignRight:
		x -= s.doc.GetStringWidth(value)
	}
	s.doc.Text(x, y, value)
}

// Image embeds a raster image at the given bounding box. The payload is
// decode-validated up front: gofpdf latches the first internal error for the
// lifetime of the document, so a corrupt logo must be rejected before
// registration rather than discovered during it.
func (s *pdfSurface) Image(format string, data []byte, x, y, w, h float64) error {
	imageType := normalizeImageType(format)
	if imageType == "" {
		return fmt.Errorf("unsupported image format %q", format)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	s.imageCount++
	name := fmt.Sprintf("img-%d", s.imageCount)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	s.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if s.doc.Err() {
		return s.doc.Error()
	}
	s.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if s.doc.Err() {
		return s.doc.Error()
	}
	return nil
}

func (s *pdfSurface) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeImageType(format string) string {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "PNG":
		return "PNG"
	case "JPG", "JPEG":
		return "JPG"
	case "GIF":
		return "GIF"
	default:
		return ""
	}
}
