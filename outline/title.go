package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// resolveTitle picks the document title and removes it from the entries
// when it was sourced from the page itself. Preference order: a usable
// metadata title, then the most salient first-page candidate at the
// document's largest font size, then empty.
func resolveTitle(doc *model.Document, cands []Candidate, entries []Entry, cfg Config) (string, []Entry) {
	if meta := doc.MetaTitle; meta != "" && !looksLikeFilename(meta, doc) {
		return meta, entries
	}

	parts := titleParts(doc, cands, cfg)
	if len(parts) == 0 {
		return "", entries
	}

	title := strings.Join(parts, " ")

	// The fallback title came from page-one content, so the same text must
	// not also appear as an outline entry. A wrapped title shows up there
	// in merged form, so the joined string is checked alongside the parts.
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Page == 1 && (e.Text == title || titleContains(parts, e.Text)) {
			continue
		}
		kept = append(kept, e)
	}
	return title, kept
}

// titleParts selects first-page candidates at the single largest font size
// in the document and merges those sitting in the same top band into a
// multi-line title, ordered top to bottom.
func titleParts(doc *model.Document, cands []Candidate, cfg Config) []string {
	maxSize := 0.0
	for _, s := range doc.Spans() {
		if s.FontSize > maxSize {
			maxSize = s.FontSize
		}
	}
	if maxSize <= 0 {
		return nil
	}

	var biggest []Candidate
	for _, c := range cands {
		// Numbered candidates are section headings by construction; a
		// document title carries no numbering prefix.
		if c.Page == 0 && c.PatternDepth == 0 && cfg.bucket(c.FontSize) == cfg.bucket(maxSize) {
			biggest = append(biggest, c)
		}
	}
	if len(biggest) == 0 {
		return nil
	}

	sort.SliceStable(biggest, func(i, j int) bool {
		return biggest[i].BBox.Top() > biggest[j].BBox.Top()
	})

	parts := []string{biggest[0].Text}
	anchor := biggest[0].BBox.Top()
	for _, c := range biggest[1:] {
		if anchor-c.BBox.Top() > cfg.TitleBandHeight {
			break
		}
		parts = append(parts, c.Text)
	}
	return parts
}

func titleContains(parts []string, text string) bool {
	for _, p := range parts {
		if p == text {
			return true
		}
	}
	return false
}

// filenameArtifacts are metadata title fragments betraying an authoring
// tool echoing a file name rather than a real title.
var filenameArtifacts = []string{
	"microsoft word -",
	"untitled",
}

// looksLikeFilename reports whether a metadata title is a filename echo:
// equal to the source file's stem or full name, carrying a short file
// extension, or a known authoring-tool artifact.
func looksLikeFilename(title string, doc *model.Document) bool {
	t := strings.TrimSpace(title)
	if strings.EqualFold(t, doc.FilenameStem()) || strings.EqualFold(t, doc.Filename) {
		return true
	}
	lower := strings.ToLower(t)
	for _, a := range filenameArtifacts {
		if strings.Contains(lower, a) {
			return true
		}
	}
	if i := strings.LastIndex(t, "."); i > 0 {
		ext := t[i+1:]
		if len(ext) >= 2 && len(ext) <= 4 && isAlpha(ext) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
