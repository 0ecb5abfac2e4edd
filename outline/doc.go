// Package outline implements the heading classification engine: given the
// per-page text spans of one document, it decides which spans are headings,
// at which of three levels, and assembles them into a titled outline.
//
// The engine is strictly rule-based. Classification combines document-wide
// font statistics, ordered numbering/keyword pattern families, and a
// weighted table of style and position signals; there is no learned model
// and no per-document tuning. Given the same spans and configuration it
// always produces the same outline.
//
// # Pipeline
//
// [BuildFontProfile] derives the body text size and up to three larger
// "tier" sizes. A boilerplate index, built in a first whole-document pass,
// marks text repeating across pages at the same vertical band. The
// [Filter] rejects non-candidates, the [Scorer] turns surviving spans into
// scored [Candidate] values, and the hierarchy builder merges wrapped
// headings and orders entries in reading order. The title resolver prefers
// embedded metadata and falls back to the most salient first-page
// candidate.
//
//	engine, err := outline.NewEngineWithConfig(cfg)
//	result := engine.BuildOutline(doc)
//
// All components are pure functions of their inputs; nothing is shared
// between documents, so documents may be processed in parallel freely.
package outline
