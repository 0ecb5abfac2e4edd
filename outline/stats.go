package outline

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// FontProfile is the document-wide font statistic the engine classifies
// against: the dominant body text size and up to three larger sizes ranked
// to heading levels H1..H3.
type FontProfile struct {
	// BodySize is the most frequent size among text-bearing spans.
	BodySize float64

	// TierSizes holds up to three distinct sizes strictly greater than
	// BodySize, descending. TierSizes[0] maps to H1, and so on. May be
	// empty, in which case levels come from pattern and style signals only.
	TierSizes []float64
}

// TierRank returns the 0-based tier index for a size, or -1 when the size
// matches no tier.
func (p FontProfile) TierRank(size float64, cfg Config) int {
	b := cfg.bucket(size)
	for i, t := range p.TierSizes {
		if cfg.bucket(t) == b {
			return i
		}
	}
	return -1
}

// BuildFontProfile buckets spans by rounded font size and elects the body
// size from the highest-frequency bucket whose spans average enough words
// to be paragraph text. Buckets of short decorative spans never win, even
// when numerous. Deterministic: ties break toward the smaller size.
func BuildFontProfile(spans []model.TextSpan, cfg Config) FontProfile {
	type bucketStat struct {
		size  float64
		count int
		words int
	}

	stats := make(map[float64]*bucketStat)
	for _, s := range spans {
		if s.TrimmedText() == "" || s.FontSize <= 0 {
			continue
		}
		b := cfg.bucket(s.FontSize)
		st, ok := stats[b]
		if !ok {
			st = &bucketStat{size: b}
			stats[b] = st
		}
		st.count++
		st.words += s.WordCount()
	}

	if len(stats) == 0 {
		return FontProfile{}
	}

	ordered := make([]*bucketStat, 0, len(stats))
	for _, st := range stats {
		ordered = append(ordered, st)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].size < ordered[j].size
	})

	var body float64
	for _, st := range ordered {
		if float64(st.words)/float64(st.count) >= float64(cfg.BodyMinWords) {
			body = st.size
			break
		}
	}
	if body == 0 {
		// No bucket looks like running text; fall back to plain frequency.
		body = ordered[0].size
	}

	var tiers []float64
	for size := range stats {
		if size > body {
			tiers = append(tiers, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(tiers)))
	if len(tiers) > maxDepth {
		tiers = tiers[:maxDepth]
	}

	return FontProfile{BodySize: body, TierSizes: tiers}
}
