package outline

import "fmt"

// Config holds every threshold and weight the engine uses. It is built
// once at startup, validated, and passed read-only into each component;
// nothing in the engine mutates it.
type Config struct {
	// MaxPages caps how many pages the extractor processes per document.
	MaxPages int `yaml:"max_pages"`

	// SizeBucket is the font-size rounding granularity in points. Sizes
	// within the same bucket are treated as equal.
	SizeBucket float64 `yaml:"size_bucket"`

	// BodyMinWords is the minimum average word count a font-size bucket
	// needs before it may be elected body text. Short decorative spans
	// share sizes with paragraphs; the word gate tells them apart.
	BodyMinWords int `yaml:"body_min_words"`

	// MaxHeadingLength is the character ceiling for heading candidates.
	// Longer spans are presumed paragraph text.
	MaxHeadingLength int `yaml:"max_heading_length"`

	// SoftHeadingLength is where the length penalty starts; between it and
	// MaxHeadingLength the length signal decays linearly to zero.
	SoftHeadingLength int `yaml:"soft_heading_length"`

	// BoilerplateRatio is the fraction of pages on which a normalized text
	// must recur, at the same vertical band, to count as header/footer.
	BoilerplateRatio float64 `yaml:"boilerplate_ratio"`

	// BoilerplateMinPages disables boilerplate detection for documents
	// shorter than this; repetition is meaningless on a two-page memo.
	BoilerplateMinPages int `yaml:"boilerplate_min_pages"`

	// PositionTolerance is the vertical band granularity in points used
	// when matching recurring header/footer positions.
	PositionTolerance float64 `yaml:"position_tolerance"`

	// AcceptThreshold is the minimum weighted score for a span to be
	// accepted as a heading.
	AcceptThreshold float64 `yaml:"accept_threshold"`

	// MergeGapFactor, multiplied by font size, is the maximum vertical gap
	// between two candidates merged as one wrapped heading.
	MergeGapFactor float64 `yaml:"merge_gap_factor"`

	// TitleBandHeight is how far below the topmost title part, in points,
	// additional same-size first-page spans are merged into the title.
	TitleBandHeight float64 `yaml:"title_band_height"`

	// Weights are the relative weights of the scoring signals.
	Weights Weights `yaml:"weights"`
}

// Weights assigns a relative weight to each scoring signal. Scores are
// normalized by the weight sum, so only ratios matter.
type Weights struct {
	FontTier  float64 `yaml:"font_tier"`
	Bold      float64 `yaml:"bold"`
	CapsRatio float64 `yaml:"caps_ratio"`
	TitleCase float64 `yaml:"title_case"`
	Pattern   float64 `yaml:"pattern"`
	Position  float64 `yaml:"position"`
	Length    float64 `yaml:"length"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	var cfg Config
	cfg.defaults()
	return cfg
}

func (c *Config) defaults() {
	if c.MaxPages <= 0 {
		c.MaxPages = 50
	}
	if c.SizeBucket <= 0 {
		c.SizeBucket = 0.5
	}
	if c.BodyMinWords <= 0 {
		c.BodyMinWords = 5
	}
	if c.MaxHeadingLength <= 0 {
		c.MaxHeadingLength = 150
	}
	if c.SoftHeadingLength <= 0 {
		c.SoftHeadingLength = 60
	}
	if c.BoilerplateRatio <= 0 {
		c.BoilerplateRatio = 0.4
	}
	if c.BoilerplateMinPages <= 0 {
		c.BoilerplateMinPages = 4
	}
	if c.PositionTolerance <= 0 {
		c.PositionTolerance = 5.0
	}
	if c.AcceptThreshold <= 0 {
		c.AcceptThreshold = 0.35
	}
	if c.MergeGapFactor <= 0 {
		c.MergeGapFactor = 1.5
	}
	if c.TitleBandHeight <= 0 {
		c.TitleBandHeight = 50.0
	}
	if c.Weights == (Weights{}) {
		c.Weights = Weights{
			FontTier:  3,
			Bold:      2,
			CapsRatio: 1,
			TitleCase: 1,
			Pattern:   3,
			Position:  1,
			Length:    1,
		}
	}
}

// Validate reports a ConfigError for settings that would silently degrade
// every document. It is meant to run once at startup, before any document
// is processed.
func (c Config) Validate() error {
	if c.MaxPages < 1 {
		return &ConfigError{Field: "max_pages", Reason: "must be at least 1"}
	}
	if c.SizeBucket <= 0 {
		return &ConfigError{Field: "size_bucket", Reason: "must be positive"}
	}
	if c.AcceptThreshold <= 0 || c.AcceptThreshold >= 1 {
		return &ConfigError{Field: "accept_threshold", Reason: "must be in (0, 1)"}
	}
	if c.BoilerplateRatio <= 0 || c.BoilerplateRatio > 1 {
		return &ConfigError{Field: "boilerplate_ratio", Reason: "must be in (0, 1]"}
	}
	if c.SoftHeadingLength > c.MaxHeadingLength {
		return &ConfigError{Field: "soft_heading_length", Reason: "must not exceed max_heading_length"}
	}
	w := c.Weights
	for _, v := range []float64{w.FontTier, w.Bold, w.CapsRatio, w.TitleCase, w.Pattern, w.Position, w.Length} {
		if v < 0 {
			return &ConfigError{Field: "weights", Reason: "weights must be non-negative"}
		}
	}
	if w.FontTier+w.Bold+w.CapsRatio+w.TitleCase+w.Pattern+w.Position+w.Length == 0 {
		return &ConfigError{Field: "weights", Reason: "at least one weight must be positive"}
	}
	return nil
}

// bucket rounds a font size to the configured granularity.
func (c Config) bucket(size float64) float64 {
	steps := size / c.SizeBucket
	whole := float64(int(steps + 0.5))
	return whole * c.SizeBucket
}

// ConfigError indicates invalid engine configuration. It is fatal at
// startup: a bad threshold would corrupt every result in the batch.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}
