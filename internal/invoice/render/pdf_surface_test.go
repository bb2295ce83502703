package render

import (
	"bytes"
	"testing"
)

func TestPDFSurfaceOutputsDocument(t *testing.T) {
	s := NewPDFSurface()
	s.SetFont(FontBold, 14)
	s.Text("hello", 20, 20, AlignLeft)
	s.Text("centered", 105, 30, AlignCenter)
	s.Text("right", 190, 40, AlignRight)
	s.SetFillColor(59, 130, 246)
	s.Rect(20, 50, 100, 10, PaintFill)
	s.RoundedRect(20, 70, 100, 10, 3, PaintStroke)
	s.Line(20, 90, 190, 90)

	out, err := s.Output()
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}

func TestPDFSurfaceRejectsCorruptImage(t *testing.T) {
	s := NewPDFSurface()
	if err := s.Image("PNG", []byte("not an image"), 20, 20, 30, 20); err == nil {
		t.Fatal("expected an error for undecodable image bytes")
	}

	// A rejected image must not poison the document.
	out, err := s.Output()
	if err != nil {
		t.Fatalf("output after rejected image: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}

func TestPDFSurfaceRejectsUnknownFormat(t *testing.T) {
	s := NewPDFSurface()
	if err := s.Image("BMP", []byte{0x42, 0x4d}, 20, 20, 30, 20); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestPDFSurfaceEmbedsValidPNG(t *testing.T) {
	logo := ParseLogoDataURI(tinyPNGDataURI)
	if logo == nil {
		t.Fatal("test PNG did not parse")
	}
	s := NewPDFSurface()
	if err := s.Image(logo.Format, logo.Data, 20, 20, 30, 20); err != nil {
		t.Fatalf("embed png: %v", err)
	}
	out, err := s.Output()
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}
