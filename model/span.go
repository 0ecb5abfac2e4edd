package model

import "strings"

// TextSpan represents one contiguous run of text sharing font and style,
// as reported by layout extraction. Spans are immutable once produced.
type TextSpan struct {
	// Page is the 0-based page index the span appears on.
	Page int

	// Text is the span content as extracted.
	Text string

	// FontName is the PostScript font name (e.g. "Helvetica-Bold").
	FontName string

	// FontSize is the nominal font size in points.
	FontSize float64

	// Bold and Italic are derived from the font name by the extractor.
	Bold   bool
	Italic bool

	// BBox is the span's bounding box in PDF coordinates (Y up).
	BBox BBox

	// PageWidth and PageHeight are the dimensions of the containing page.
	PageWidth  float64
	PageHeight float64
}

// TrimmedText returns the span text with surrounding whitespace removed
// and internal runs of whitespace collapsed to single spaces.
func (s TextSpan) TrimmedText() string {
	return strings.Join(strings.Fields(s.Text), " ")
}

// WordCount returns the number of whitespace-separated words in the span.
func (s TextSpan) WordCount() int {
	return len(strings.Fields(s.Text))
}

// InTopThird reports whether the span's top edge falls in the upper third
// of its page. PDF coordinates grow upward, so this is a Y threshold.
func (s TextSpan) InTopThird() bool {
	if s.PageHeight <= 0 {
		return false
	}
	return s.BBox.Top() >= s.PageHeight*(2.0/3.0)
}

// Page holds the ordered spans of a single page.
type Page struct {
	Index  int // 0-based
	Width  float64
	Height float64
	Spans  []TextSpan
}

// Document is the extraction result for one PDF: ordered pages of spans
// plus whatever metadata the file carried. It is the engine's sole input.
type Document struct {
	// Filename is the base name of the source file (e.g. "report.pdf").
	Filename string

	// MetaTitle is the embedded metadata title, empty if absent.
	MetaTitle string

	// PageCount is the number of pages processed (capped by the extractor).
	PageCount int

	Pages []Page
}

// Spans returns all spans of the document in reading order.
func (d *Document) Spans() []TextSpan {
	var spans []TextSpan
	for _, p := range d.Pages {
		spans = append(spans, p.Spans...)
	}
	return spans
}

// HasText reports whether any span contains non-whitespace text.
func (d *Document) HasText() bool {
	for _, p := range d.Pages {
		for _, s := range p.Spans {
			if strings.TrimSpace(s.Text) != "" {
				return true
			}
		}
	}
	return false
}

// FilenameStem returns the filename without its extension.
func (d *Document) FilenameStem() string {
	name := d.Filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
