package outline

import "sort"

// Entry is one line of the final outline. Page is 1-indexed, matching
// what readers see in a PDF viewer.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// BuildHierarchy turns accepted candidates into the ordered entry list:
// document order, wrapped headings merged, levels clamped to H3, exact
// duplicates dropped.
//
// Level sequences are not forced to nest monotonically. A document may
// legitimately open with an H2-styled preface before its first H1; the
// engine has no semantic model of structure and does not fabricate
// intermediate levels.
func BuildHierarchy(cands []Candidate, cfg Config) []Entry {
	if len(cands) == 0 {
		return []Entry{}
	}

	ordered := make([]Candidate, len(cands))
	copy(ordered, cands)
	sortDocumentOrder(ordered)

	merged := mergeWrapped(ordered, cfg)

	entries := make([]Entry, 0, len(merged))
	type dupKey struct {
		text string
		page int
	}
	seen := make(map[dupKey]struct{})
	for _, c := range merged {
		if c.Text == "" {
			continue
		}
		k := dupKey{c.Text, c.Page}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, Entry{
			Level: c.Level.Clamp(),
			Text:  c.Text,
			Page:  c.Page + 1,
		})
	}
	return entries
}

// sortDocumentOrder sorts by page, then top-to-bottom (PDF Y grows
// upward), then left-to-right.
func sortDocumentOrder(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Page != cands[j].Page {
			return cands[i].Page < cands[j].Page
		}
		if cands[i].BBox.Top() != cands[j].BBox.Top() {
			return cands[i].BBox.Top() > cands[j].BBox.Top()
		}
		return cands[i].BBox.X < cands[j].BBox.X
	})
}

// mergeWrapped joins consecutive candidates that are really one heading
// wrapped across lines: same page, same level, same font face and size,
// and vertically within the configured gap.
func mergeWrapped(cands []Candidate, cfg Config) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if canMerge(*prev, c, cfg) {
				prev.Text = prev.Text + " " + c.Text
				prev.BBox = prev.BBox.Union(c.BBox)
				if c.Score > prev.Score {
					prev.Score = c.Score
				}
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func canMerge(a, b Candidate, cfg Config) bool {
	if a.Page != b.Page || a.Level != b.Level {
		return false
	}
	if a.FontName != b.FontName || cfg.bucket(a.FontSize) != cfg.bucket(b.FontSize) {
		return false
	}
	// A continuation line carries no numbering of its own; a new pattern
	// match means a new heading, however close.
	if b.PatternDepth > 0 {
		return false
	}
	return a.BBox.VerticalGap(b.BBox) <= cfg.MergeGapFactor*a.FontSize
}
