package outline

import (
	"regexp"
	"strings"
)

// patternFamily is one numbering/lettering/keyword form that marks a
// heading and implies a nesting depth.
type patternFamily struct {
	name  string
	re    *regexp.Regexp
	depth func(match string) int
}

// patternFamilies is checked in priority order; the first match wins and a
// span matches at most one family. Roman and letter forms are deliberately
// case-sensitive so ordinary sentence-initial capitals don't collide;
// keywords are case-insensitive.
var patternFamilies = []patternFamily{
	{
		name: "decimal",
		re:   regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+\S`),
		depth: func(match string) int {
			return strings.Count(match, ".") + 1
		},
	},
	{
		name:  "roman",
		re:    regexp.MustCompile(`^[IVXLCDM]+\.\s+`),
		depth: func(string) int { return 1 },
	},
	{
		name:  "letter",
		re:    regexp.MustCompile(`^[A-Z]\.\s+`),
		depth: func(string) int { return 1 },
	},
	{
		name:  "keyword",
		re:    regexp.MustCompile(`(?i)^(chapter|section|part)\s+\d+`),
		depth: func(string) int { return 1 },
	},
}

// matchPatternDepth matches the trimmed text against the pattern families
// and returns the implied nesting depth (1..3) if any family matches.
func matchPatternDepth(text string) (int, bool) {
	for _, fam := range patternFamilies {
		m := fam.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		arg := m[0]
		if len(m) > 1 {
			arg = m[1]
		}
		d := fam.depth(arg)
		if d > maxDepth {
			d = maxDepth
		}
		if d < 1 {
			d = 1
		}
		return d, true
	}
	return 0, false
}

// skipPatterns reject text that matches a heading's shape but never is
// one: figure and table captions, running page numbers, standalone
// numbers, e-mail addresses and URLs.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(fig\.|figure|table|equation)\s*\d+`),
	regexp.MustCompile(`(?i)^page\s+\d+\b`),
	regexp.MustCompile(`^[\d\s.\-–/]+$`),
	regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`),
	regexp.MustCompile(`(?i)^(https?://|www\.)`),
}

// shouldSkip reports whether the text matches a known non-heading form.
func shouldSkip(text string) bool {
	for _, re := range skipPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
