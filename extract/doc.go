// Package extract implements layout extraction: it opens a PDF and yields,
// per page, an ordered sequence of line-level text spans with font name,
// size, style and position, plus the embedded metadata title and page count.
//
// PDFs frequently report text as character-level runs. The extractor
// assembles runs into line spans by Y proximity before handing them to the
// outline engine, since pattern matching is meaningless on single glyphs.
//
// The extractor is best-effort: a malformed page yields no spans rather
// than an error, and only an unopenable file fails with [ParseError].
package extract
