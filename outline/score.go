package outline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/outliner/model"
)

// Candidate is a span (or, after merging, a group of spans) that survived
// filtering and received a heading score.
type Candidate struct {
	Text         string
	Page         int // 0-based
	Level        Level
	Score        float64
	BBox         model.BBox
	FontSize     float64
	FontName     string
	Bold         bool
	PatternDepth int // 0 when no pattern family matched
}

// signal is one row of the scoring table: a named, weighted evaluation
// normalized to [0, 1]. Keeping signals as data keeps weights tunable and
// testable independently of control flow.
type signal struct {
	name   string
	weight float64
	eval   func(sc scoredSpan) float64
}

// scoredSpan bundles what the signal evaluators may look at.
type scoredSpan struct {
	span         model.TextSpan
	text         string
	patternDepth int
	tierRank     int // -1 when the size matches no tier
	tierCount    int
	aboveBody    bool
	cfg          Config
}

// Scorer converts filtered spans into scored, tentatively-leveled
// candidates using a weighted combination of independent signals.
type Scorer struct {
	profile FontProfile
	cfg     Config
	signals []signal
}

// NewScorer builds the signal table for one document's font profile.
func NewScorer(profile FontProfile, cfg Config) *Scorer {
	w := cfg.Weights
	return &Scorer{
		profile: profile,
		cfg:     cfg,
		signals: []signal{
			{"font_tier", w.FontTier, evalFontTier},
			{"bold", w.Bold, evalBold},
			{"caps_ratio", w.CapsRatio, evalCapsRatio},
			{"title_case", w.TitleCase, evalTitleCase},
			{"pattern", w.Pattern, evalPattern},
			{"position", w.Position, evalPosition},
			{"length", w.Length, evalLength},
		},
	}
}

// Score evaluates one span. The second return is false when the weighted
// score falls below the acceptance threshold.
func (s *Scorer) Score(span model.TextSpan) (Candidate, bool) {
	text := cleanHeadingText(span.TrimmedText())
	if text == "" {
		return Candidate{}, false
	}

	depth, hasPattern := matchPatternDepth(text)
	sc := scoredSpan{
		span:         span,
		text:         text,
		patternDepth: depth,
		tierRank:     s.profile.TierRank(span.FontSize, s.cfg),
		tierCount:    len(s.profile.TierSizes),
		aboveBody:    span.FontSize > s.profile.BodySize,
		cfg:          s.cfg,
	}

	var score, weightSum float64
	for _, sig := range s.signals {
		weightSum += sig.weight
		score += sig.weight * sig.eval(sc)
	}
	if weightSum > 0 {
		score /= weightSum
	}
	if score < s.cfg.AcceptThreshold {
		return Candidate{}, false
	}

	// Level assignment: pattern depth wins over the font tier; with
	// neither signal, style alone cleared the threshold, so default to
	// the lowest level rather than over-promote.
	var level Level
	switch {
	case hasPattern:
		level = levelForDepth(depth)
	case sc.tierRank >= 0:
		level = levelForDepth(sc.tierRank + 1)
	default:
		level = LevelH3
	}

	return Candidate{
		Text:         text,
		Page:         span.Page,
		Level:        level,
		Score:        score,
		BBox:         span.BBox,
		FontSize:     span.FontSize,
		FontName:     span.FontName,
		Bold:         span.Bold,
		PatternDepth: depth,
	}, true
}

// evalFontTier rewards sizes matching a heading tier: 1.0 for the largest
// tier, decreasing per rank. Sizes above body but outside every tier get a
// small credit; body size and below get none.
func evalFontTier(sc scoredSpan) float64 {
	if sc.tierRank >= 0 && sc.tierCount > 0 {
		return float64(sc.tierCount-sc.tierRank) / float64(sc.tierCount)
	}
	if sc.aboveBody {
		return 1.0 / float64(sc.tierCount+1)
	}
	return 0
}

func evalBold(sc scoredSpan) float64 {
	if sc.span.Bold {
		return 1
	}
	return 0
}

// evalCapsRatio is the fraction of alphabetic characters that are
// uppercase: ALL-CAPS headings score 1, sentence case scores near 0.
func evalCapsRatio(sc scoredSpan) float64 {
	var upper, letters int
	for _, r := range sc.text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// evalTitleCase is the fraction of words starting with an uppercase letter.
func evalTitleCase(sc scoredSpan) float64 {
	words := strings.Fields(sc.text)
	if len(words) == 0 {
		return 0
	}
	capped := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			capped++
		}
	}
	return float64(capped) / float64(len(words))
}

func evalPattern(sc scoredSpan) float64 {
	if sc.patternDepth > 0 {
		return 1
	}
	return 0
}

// evalPosition rewards spans opening the top third of their page, where
// section headings tend to sit.
func evalPosition(sc scoredSpan) float64 {
	if sc.span.InTopThird() {
		return 1
	}
	return 0
}

// evalLength is 1 up to the soft length and decays linearly to 0 at the
// candidate ceiling.
func evalLength(sc scoredSpan) float64 {
	n := len([]rune(sc.text))
	soft, max := sc.cfg.SoftHeadingLength, sc.cfg.MaxHeadingLength
	if n <= soft {
		return 1
	}
	if n >= max {
		return 0
	}
	return float64(max-n) / float64(max-soft)
}

// artifactPrefix strips leading bullets and dot leaders left over from
// list markers and TOC lines.
var artifactPrefix = regexp.MustCompile(`^[•\-*+]\s*|^\s*\.+\s*`)

// cleanHeadingText normalizes candidate text: whitespace is already
// collapsed by TrimmedText, leading marker artifacts are removed here.
func cleanHeadingText(text string) string {
	return strings.TrimSpace(artifactPrefix.ReplaceAllString(text, ""))
}
