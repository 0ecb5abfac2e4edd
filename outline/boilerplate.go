package outline

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/outliner/model"
)

// boilerplateIndex records, over a whole document, how many distinct pages
// each normalized text occurs on at the same vertical band. Running titles
// and footer lines recur near-identically; genuine headings do not.
//
// The index must be built over all pages before any per-span decision is
// made.
type boilerplateIndex struct {
	pages map[string]map[int]struct{}
	total int
	cfg   Config
}

func newBoilerplateIndex(doc *model.Document, cfg Config) *boilerplateIndex {
	idx := &boilerplateIndex{
		pages: make(map[string]map[int]struct{}),
		total: doc.PageCount,
		cfg:   cfg,
	}
	for _, page := range doc.Pages {
		for _, span := range page.Spans {
			key, ok := idx.key(span)
			if !ok {
				continue
			}
			if idx.pages[key] == nil {
				idx.pages[key] = make(map[int]struct{})
			}
			idx.pages[key][span.Page] = struct{}{}
		}
	}
	return idx
}

// IsBoilerplate reports whether the span's text recurs on more than the
// configured fraction of pages at the same vertical band. Documents below
// the minimum page count never report boilerplate.
func (idx *boilerplateIndex) IsBoilerplate(span model.TextSpan) bool {
	if idx.total < idx.cfg.BoilerplateMinPages {
		return false
	}
	key, ok := idx.key(span)
	if !ok {
		return false
	}
	occur := len(idx.pages[key])
	return float64(occur) > idx.cfg.BoilerplateRatio*float64(idx.total)
}

// key builds the text+band identity of a span. Banding by the position
// tolerance tolerates the point-level jitter typical of running footers.
func (idx *boilerplateIndex) key(span model.TextSpan) (string, bool) {
	text := strings.ToLower(span.TrimmedText())
	if text == "" {
		return "", false
	}
	band := int(math.Round(span.BBox.Y / idx.cfg.PositionTolerance))
	return text + "\x00" + strconv.Itoa(band), true
}
