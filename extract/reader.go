package extract

import (
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// Letter-size fallback for pages without a resolvable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// ReadDocument opens the PDF at path and extracts line-level spans for up
// to maxPages pages (0 means no cap). It returns a ParseError when the file
// cannot be opened as a PDF. A document with zero spans is not an error;
// callers decide how to degrade.
func ReadDocument(path string, maxPages int) (*model.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	total := reader.NumPage()
	if maxPages > 0 && total > maxPages {
		total = maxPages
	}

	doc := &model.Document{
		Filename:  filepath.Base(path),
		MetaTitle: metadataTitle(reader),
		PageCount: total,
	}

	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		width, height := defaultPageWidth, defaultPageHeight
		var runs []run
		if !page.V.IsNull() {
			width, height = pageSize(page)
			runs = pageRuns(page)
		}
		doc.Pages = append(doc.Pages, model.Page{
			Index:  num - 1,
			Width:  width,
			Height: height,
			Spans:  assembleLines(runs, num-1, width, height),
		})
	}

	return doc, nil
}

// pageRuns collects the positioned text runs of one page. The underlying
// reader panics on some malformed content streams; such pages yield no
// runs instead of aborting the document.
func pageRuns(page pdflib.Page) (runs []run) {
	defer func() {
		if recover() != nil {
			runs = nil
		}
	}()

	content := page.Content()
	for _, t := range content.Text {
		text := norm.NFC.String(t.S)
		if strings.TrimSpace(text) == "" {
			continue
		}
		runs = append(runs, run{
			text: text,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
			size: t.FontSize,
			font: t.Font,
		})
	}
	return runs
}

// pageSize resolves the page MediaBox, following the Parent chain for
// inherited attributes, and falls back to US Letter.
func pageSize(page pdflib.Page) (width, height float64) {
	defer func() {
		if recover() != nil {
			width, height = defaultPageWidth, defaultPageHeight
		}
	}()

	v := page.V
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if mb.Kind() == pdflib.Array && mb.Len() >= 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
			break
		}
		v = v.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

// metadataTitle reads the Info dictionary title, empty when absent.
func metadataTitle(reader *pdflib.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	t := info.Key("Title")
	if t.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(norm.NFC.String(t.Text()))
}
