package outline

import (
	"reflect"
	"testing"

	"github.com/tsawler/outliner/model"
)

func makeCandidate(text string, page int, level Level, y float64) Candidate {
	return Candidate{
		Text:     text,
		Page:     page,
		Level:    level,
		Score:    0.9,
		BBox:     model.NewBBox(72, y, 200, 16),
		FontSize: 16,
		FontName: "Helvetica-Bold",
		Bold:     true,
	}
}

func TestBuildHierarchy_DocumentOrder(t *testing.T) {
	// Deliberately out of order on input.
	cands := []Candidate{
		makeCandidate("Second on Page One", 0, LevelH2, 500),
		makeCandidate("On Page Two", 1, LevelH1, 700),
		makeCandidate("First on Page One", 0, LevelH1, 700),
	}

	entries := BuildHierarchy(cands, DefaultConfig())

	want := []Entry{
		{Level: LevelH1, Text: "First on Page One", Page: 1},
		{Level: LevelH2, Text: "Second on Page One", Page: 1},
		{Level: LevelH1, Text: "On Page Two", Page: 2},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestBuildHierarchy_PagesAreOneIndexed(t *testing.T) {
	entries := BuildHierarchy([]Candidate{makeCandidate("Heading", 0, LevelH1, 700)}, DefaultConfig())
	if len(entries) != 1 || entries[0].Page != 1 {
		t.Errorf("entries = %+v, want single entry on page 1", entries)
	}
}

func TestBuildHierarchy_MergesWrappedHeading(t *testing.T) {
	// Two lines of the same heading: same page, level, face, and size,
	// one line-height apart.
	a := makeCandidate("A Very Long Heading That", 0, LevelH1, 700)
	b := makeCandidate("Wraps Onto a Second Line", 0, LevelH1, 680)

	entries := BuildHierarchy([]Candidate{a, b}, DefaultConfig())

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 merged: %+v", len(entries), entries)
	}
	want := "A Very Long Heading That Wraps Onto a Second Line"
	if entries[0].Text != want {
		t.Errorf("Text = %q, want %q", entries[0].Text, want)
	}
}

func TestBuildHierarchy_NoMergeAcrossGap(t *testing.T) {
	a := makeCandidate("First Heading", 0, LevelH1, 700)
	b := makeCandidate("Second Heading", 0, LevelH1, 400) // far below

	entries := BuildHierarchy([]Candidate{a, b}, DefaultConfig())

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
}

func TestBuildHierarchy_NoMergeWhenSecondLineIsNumbered(t *testing.T) {
	a := makeCandidate("1. Introduction", 0, LevelH1, 700)
	b := makeCandidate("2. Methods", 0, LevelH1, 680)
	b.PatternDepth = 1
	a.PatternDepth = 1

	entries := BuildHierarchy([]Candidate{a, b}, DefaultConfig())

	if len(entries) != 2 {
		t.Fatalf("adjacent numbered headings must not merge, got %+v", entries)
	}
}

func TestBuildHierarchy_DropsExactDuplicates(t *testing.T) {
	a := makeCandidate("Repeated", 2, LevelH2, 700)
	b := makeCandidate("Repeated", 2, LevelH2, 300)
	c := makeCandidate("Repeated", 3, LevelH2, 700) // other page, kept

	entries := BuildHierarchy([]Candidate{a, b, c}, DefaultConfig())

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Page != 3 || entries[1].Page != 4 {
		t.Errorf("pages = %d, %d, want 3 and 4", entries[0].Page, entries[1].Page)
	}
}

func TestBuildHierarchy_PreservesNonMonotonicLevels(t *testing.T) {
	// An H2-styled preface before the first H1 stays an H2; no synthetic
	// parent levels are invented.
	cands := []Candidate{
		makeCandidate("Preface", 0, LevelH2, 700),
		makeCandidate("Getting Started", 1, LevelH1, 700),
	}

	entries := BuildHierarchy(cands, DefaultConfig())

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != LevelH2 || entries[1].Level != LevelH1 {
		t.Errorf("levels = %v, %v, want H2 then H1", entries[0].Level, entries[1].Level)
	}
}

func TestBuildHierarchy_ClampsDeepLevels(t *testing.T) {
	c := makeCandidate("Deep", 0, LevelH3+2, 700)
	entries := BuildHierarchy([]Candidate{c}, DefaultConfig())
	if len(entries) != 1 || entries[0].Level != LevelH3 {
		t.Errorf("entries = %+v, want single H3", entries)
	}
}

func TestBuildHierarchy_EmptyInput(t *testing.T) {
	entries := BuildHierarchy(nil, DefaultConfig())
	if entries == nil {
		t.Fatal("entries must be non-nil so JSON renders [] rather than null")
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v, want empty", entries)
	}
}
