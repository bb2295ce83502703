package render

import (
	"errors"
	"strings"
)

// fakeSurface records draw calls so layout tests can assert on the exact
// sequence of primitives a template emits.
type fakeSurface struct {
	ops      []surfaceOp
	images   int
	imageErr error
}

type surfaceOp struct {
	kind  string
	text  string
	x, y  float64
	w, h  float64
	align Align
}

func (s *fakeSurface) SetFillColor(r, g, b int) {}
func (s *fakeSurface) SetDrawColor(r, g, b int) {}
func (s *fakeSurface) SetTextColor(r, g, b int) {}

func (s *fakeSurface) SetFont(style FontStyle, size float64) {}
func (s *fakeSurface) SetLineWidth(width float64)            {}

func (s *fakeSurface) Rect(x, y, w, h float64, paint Paint) {
	s.ops = append(s.ops, surfaceOp{kind: "rect", x: x, y: y, w: w, h: h})
}

func (s *fakeSurface) RoundedRect(x, y, w, h, radius float64, paint Paint) {
	s.ops = append(s.ops, surfaceOp{kind: "roundedrect", x: x, y: y, w: w, h: h})
}

func (s *fakeSurface) Line(x1, y1, x2, y2 float64) {
	s.ops = append(s.ops, surfaceOp{kind: "line", x: x1, y: y1, w: x2, h: y2})
}

func (s *fakeSurface) Text(value string, x, y float64, align Align) {
	s.ops = append(s.ops, surfaceOp{kind: "text", text: value, x: x, y: y, align: align})
}

func (s *fakeSurface) Image(format string, data []byte, x, y, w, h float64) error {
	s.images++
	if s.imageErr != nil {
		return s.imageErr
	}
	s.ops = append(s.ops, surfaceOp{kind: "image", text: format, x: x, y: y, w: w, h: h})
	return nil
}

func (s *fakeSurface) Output() ([]byte, error) {
	return []byte("%fake"), nil
}

func (s *fakeSurface) textOps(substr string) []surfaceOp {
	var matched []surfaceOp
	for _, op := range s.ops {
		if op.kind == "text" && strings.Contains(op.text, substr) {
			matched = append(matched, op)
		}
	}
	return matched
}

var errImageRejected = errors.New("image rejected")
