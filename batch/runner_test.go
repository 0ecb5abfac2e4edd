package batch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

func testDocument(filename string) *model.Document {
	heading := model.TextSpan{
		Page:       0,
		Text:       "1. Introduction",
		FontName:   "Helvetica-Bold",
		FontSize:   16,
		Bold:       true,
		BBox:       model.NewBBox(72, 700, 120, 16),
		PageWidth:  612,
		PageHeight: 792,
	}
	body := model.TextSpan{
		Page:       0,
		Text:       "This paragraph carries enough running words to anchor the body size.",
		FontName:   "Helvetica",
		FontSize:   10,
		BBox:       model.NewBBox(72, 650, 400, 10),
		PageWidth:  612,
		PageHeight: 792,
	}
	return &model.Document{
		Filename:  filename,
		MetaTitle: "Test Document",
		PageCount: 1,
		Pages: []model.Page{{
			Index: 0, Width: 612, Height: 792,
			Spans: []model.TextSpan{heading, body},
		}},
	}
}

func newTestRunner(t *testing.T, read readFunc) *Runner {
	t.Helper()
	r := NewRunner(outline.NewEngine(), nil, 2, time.Second)
	r.read = read
	return r
}

func touchPDFs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun_WritesOutlinePerDocument(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	touchPDFs(t, inDir, "alpha.pdf", "beta.pdf")

	r := newTestRunner(t, func(path string, maxPages int) (*model.Document, error) {
		return testDocument(filepath.Base(path)), nil
	})

	summary, err := r.Run(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 2 || summary.Succeeded != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 2 succeeded", summary)
	}

	for _, name := range []string{"alpha.json", "beta.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		var out outline.Outline
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("%s: invalid JSON: %v", name, err)
		}
		if out.Title != "Test Document" {
			t.Errorf("%s: title = %q", name, out.Title)
		}
		if len(out.Entries) != 1 || out.Entries[0].Text != "1. Introduction" {
			t.Errorf("%s: entries = %+v", name, out.Entries)
		}
	}
}

func TestRun_ParseFailureIsRecordedNotFatal(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	touchPDFs(t, inDir, "bad.pdf", "good.pdf")

	r := newTestRunner(t, func(path string, maxPages int) (*model.Document, error) {
		if filepath.Base(path) == "bad.pdf" {
			return nil, &extract.ParseError{Path: path, Err: errors.New("malformed xref")}
		}
		return testDocument(filepath.Base(path)), nil
	})

	summary, err := r.Run(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want one of each", summary)
	}

	if _, err := os.Stat(filepath.Join(outDir, "bad.json")); !os.IsNotExist(err) {
		t.Error("failed document must not leave an output file")
	}
	if _, err := os.Stat(filepath.Join(outDir, "good.json")); err != nil {
		t.Errorf("good document output missing: %v", err)
	}
}

func TestRun_TimeoutLeavesNoOutput(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	touchPDFs(t, inDir, "slow.pdf")

	r := NewRunner(outline.NewEngine(), nil, 1, 20*time.Millisecond)
	r.read = func(path string, maxPages int) (*model.Document, error) {
		time.Sleep(500 * time.Millisecond)
		return testDocument("slow.pdf"), nil
	}

	summary, err := r.Run(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 {
		t.Fatalf("summary = %+v, want one failure", summary)
	}
	if !errors.Is(summary.Results[0].Err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", summary.Results[0].Err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "slow.json")); !os.IsNotExist(err) {
		t.Error("timed-out document must not leave an output file")
	}
}

func TestRun_ParentCancellationIsNotATimeout(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	touchPDFs(t, inDir, "doc.pdf")

	ctx, cancel := context.WithCancel(context.Background())

	// Generous per-document timeout; only the parent cancel can fire.
	r := NewRunner(outline.NewEngine(), nil, 1, time.Minute)
	r.read = func(path string, maxPages int) (*model.Document, error) {
		cancel()
		time.Sleep(500 * time.Millisecond)
		return testDocument("doc.pdf"), nil
	}

	summary, err := r.Run(ctx, inDir, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 {
		t.Fatalf("summary = %+v, want one failure", summary)
	}
	got := summary.Results[0].Err
	if errors.Is(got, ErrTimeout) {
		t.Errorf("err = %v, must not be labelled a timeout", got)
	}
	if !errors.Is(got, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", got)
	}
}

func TestRun_EmptyInputDirectory(t *testing.T) {
	r := NewRunner(outline.NewEngine(), nil, 1, time.Second)
	summary, err := r.Run(context.Background(), t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 0 {
		t.Errorf("summary = %+v, want empty", summary)
	}
}

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	touchPDFs(t, inDir, "c.pdf", "a.pdf", "b.pdf")

	r := newTestRunner(t, func(path string, maxPages int) (*model.Document, error) {
		// Stagger completion so order would scramble without indexing.
		if filepath.Base(path) == "a.pdf" {
			time.Sleep(50 * time.Millisecond)
		}
		return testDocument(filepath.Base(path)), nil
	})

	summary, err := r.Run(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.pdf", "b.pdf", "c.pdf"}
	for i, w := range want {
		if filepath.Base(summary.Results[i].Path) != w {
			t.Errorf("Results[%d] = %s, want %s", i, summary.Results[i].Path, w)
		}
	}
}

func TestOutputPath(t *testing.T) {
	got := outputPath("out", filepath.Join("in", "annual report.pdf"))
	want := filepath.Join("out", "annual report.json")
	if got != want {
		t.Errorf("outputPath = %q, want %q", got, want)
	}
}

func TestWriteOutlineAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	out := &outline.Outline{Title: "T", Entries: []outline.Entry{}}
	if err := writeOutline(path, out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  \"title\": \"T\",\n  \"outline\": []\n}\n" {
		t.Errorf("unexpected serialization:\n%s", data)
	}

	// No temp files should survive.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory should hold exactly the output file, got %d entries", len(entries))
	}
}
