package extract

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// run is a single positioned text run as reported by the PDF reader,
// often one character, sometimes a whole word or line.
type run struct {
	text string
	x, y float64 // baseline origin, PDF coordinates (Y up)
	w    float64
	size float64
	font string
}

// boldMarkers and italicMarkers are font-name substrings that indicate
// style. PDF readers rarely expose style flags directly; the font name
// (e.g. "Helvetica-BoldOblique") is the reliable signal.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}
var italicMarkers = []string{"italic", "oblique"}

func fontIsBold(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range boldMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func fontIsItalic(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range italicMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// assembleLines groups runs into line-level spans. Runs are sorted into
// reading order (top to bottom, left to right), grouped by Y proximity,
// and joined with spaces wherever the horizontal gap between consecutive
// runs exceeds 30% of the font size.
func assembleLines(runs []run, pageIndex int, pageWidth, pageHeight float64) []model.TextSpan {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]run, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].y - sorted[j].y
		if abs(yDiff) > lineHeight(sorted[i])*0.5 {
			return yDiff > 0 // higher Y first
		}
		return sorted[i].x < sorted[j].x
	})

	// Group into lines by Y proximity.
	var lines [][]run
	var current []run
	for _, r := range sorted {
		if len(current) == 0 {
			current = append(current, r)
			continue
		}
		last := current[len(current)-1]
		if abs(r.y-last.y) <= lineHeight(last)*0.5 {
			current = append(current, r)
		} else {
			lines = append(lines, current)
			current = []run{r}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	var spans []model.TextSpan
	for _, line := range lines {
		if span, ok := lineToSpan(line, pageIndex, pageWidth, pageHeight); ok {
			spans = append(spans, span)
		}
	}
	return spans
}

// lineToSpan flattens one line of runs into a single span.
func lineToSpan(line []run, pageIndex int, pageWidth, pageHeight float64) (model.TextSpan, bool) {
	if len(line) == 0 {
		return model.TextSpan{}, false
	}

	sort.SliceStable(line, func(i, j int) bool {
		return line[i].x < line[j].x
	})

	var sb strings.Builder
	var lastEndX float64
	for i, r := range line {
		if i > 0 {
			gap := r.x - lastEndX
			if gap > r.size*0.3 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(r.text)
		lastEndX = r.x + r.w
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return model.TextSpan{}, false
	}

	first, last := line[0], line[len(line)-1]
	minY, maxY := first.y, first.y+lineHeight(first)
	maxSize := 0.0
	fontName := first.font
	bold, italic := false, false
	for _, r := range line {
		if r.y < minY {
			minY = r.y
		}
		if top := r.y + lineHeight(r); top > maxY {
			maxY = top
		}
		if r.size > maxSize {
			maxSize = r.size
			fontName = r.font
		}
		if fontIsBold(r.font) {
			bold = true
		}
		if fontIsItalic(r.font) {
			italic = true
		}
	}

	bbox := model.NewBBox(first.x, minY, (last.x+last.w)-first.x, maxY-minY)
	if !bbox.IsValid() {
		// Degenerate boxes (zero-width runs from broken width tables)
		// carry no usable position signal.
		return model.TextSpan{}, false
	}

	return model.TextSpan{
		Page:       pageIndex,
		Text:       text,
		FontName:   fontName,
		FontSize:   maxSize,
		Bold:       bold,
		Italic:     italic,
		BBox:       bbox,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}, true
}

// lineHeight approximates a run's height. Readers report only the baseline
// and font size, so the font size stands in for the glyph box height.
func lineHeight(r run) float64 {
	if r.size > 0 {
		return r.size
	}
	return 1
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
