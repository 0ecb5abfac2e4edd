package outline

import (
	"github.com/tsawler/outliner/model"
)

// Filter rejects spans that cannot be headings before any scoring runs:
// empty or overlong text, known non-heading shapes, cross-page
// header/footer boilerplate, and unstyled body-sized paragraph runs.
type Filter struct {
	profile FontProfile
	boiler  *boilerplateIndex
	cfg     Config
}

// NewFilter builds a filter for one document. The boilerplate index is a
// whole-document statistic, so the filter is constructed after all pages
// have been extracted.
func NewFilter(doc *model.Document, profile FontProfile, cfg Config) *Filter {
	return &Filter{
		profile: profile,
		boiler:  newBoilerplateIndex(doc, cfg),
		cfg:     cfg,
	}
}

// Keep reports whether the span survives as a candidate-in-waiting.
func (f *Filter) Keep(span model.TextSpan) bool {
	text := span.TrimmedText()
	if text == "" {
		return false
	}
	if len([]rune(text)) > f.cfg.MaxHeadingLength {
		return false
	}
	if shouldSkip(text) {
		return false
	}
	if f.boiler.IsBoilerplate(span) {
		return false
	}

	// Body-sized text needs bold styling or a numbering pattern to stay
	// in the running; everything at that size is presumed paragraph text.
	if f.cfg.bucket(span.FontSize) == f.cfg.bucket(f.profile.BodySize) && !span.Bold {
		if _, ok := matchPatternDepth(text); !ok {
			return false
		}
	}

	return true
}
