package outline

import (
	"github.com/tsawler/outliner/model"
)

// Outline is the terminal artifact for one document: a title and the
// ordered heading entries. The outline field is always present in JSON,
// empty or not.
type Outline struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"outline"`
}

// Engine runs the classification pipeline over one extracted document.
// An Engine is immutable and safe for concurrent use across documents.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the default configuration.
func NewEngine() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

// NewEngineWithConfig validates the configuration and creates an engine.
// A ConfigError here is fatal by policy: it would degrade every document.
func NewEngineWithConfig(cfg Config) (*Engine, error) {
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// BuildOutline classifies the document's spans into a titled outline.
// It never fails: a document with no usable text degrades to an empty
// outline with whatever title the metadata offers.
func (e *Engine) BuildOutline(doc *model.Document) *Outline {
	spans := doc.Spans()

	if !doc.HasText() {
		title := ""
		if doc.MetaTitle != "" && !looksLikeFilename(doc.MetaTitle, doc) {
			title = doc.MetaTitle
		}
		return &Outline{Title: title, Entries: []Entry{}}
	}

	profile := BuildFontProfile(spans, e.cfg)
	filter := NewFilter(doc, profile, e.cfg)
	scorer := NewScorer(profile, e.cfg)

	var cands []Candidate
	for _, span := range spans {
		if !filter.Keep(span) {
			continue
		}
		if c, ok := scorer.Score(span); ok {
			cands = append(cands, c)
		}
	}

	entries := BuildHierarchy(cands, e.cfg)
	title, entries := resolveTitle(doc, cands, entries, e.cfg)

	return &Outline{Title: title, Entries: entries}
}
