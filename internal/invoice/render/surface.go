package render

// FontStyle selects the typeface weight for subsequent text calls.
type FontStyle string

const (
	FontNormal FontStyle = ""
	FontBold   FontStyle = "B"
	FontItalic FontStyle = "I"
)

// Align controls the horizontal anchor of a text call.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Paint selects how a rectangle is painted.
type Paint string

const (
	PaintFill       Paint = "F"
	PaintStroke     Paint = "D"
	PaintFillStroke Paint = "FD"
)

// Surface is the drawing target a template renders onto. Coordinates are in
// millimetres on an A4 portrait page (210x297); the origin is the top-left
// corner. A surface accumulates draw calls and serializes to a document once.
type Surface interface {
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetTextColor(r, g, b int)
	SetFont(style FontStyle, size float64)
	SetLineWidth(width float64)
	Rect(x, y, w, h float64, paint Paint)
	RoundedRect(x, y, w, h, radius float64, paint Paint)
	Line(x1, y1, x2, y2 float64)
	Text(value string, x, y float64, align Align)
	Image(format string, data []byte, x, y, w, h float64) error
	Output() ([]byte, error)
}
