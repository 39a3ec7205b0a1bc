package bilingual

import (
	"log/slog"
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/termscout/termscout/internal/domain"
)

// Matcher annotates extracted terms with translations from a parsed
// reference file. Exact matches replace the oracle translation; fuzzy
// matches at or above the threshold are attached as advisory references
// without touching the oracle translation.
type Matcher struct {
	pairs     []Pair
	exact     map[string]int
	threshold float64
	fileName  string
	format    domain.BilingualFormat
	log       *slog.Logger
}

// NewMatcher builds the exact-match index over the reference pairs.
// Index keys are lowercased and trimmed; when two pairs collide on a
// normalized key, the first stored pair wins.
func NewMatcher(ref *Reference, fuzzyThreshold float64, fileName string, log *slog.Logger) *Matcher {
	m := &Matcher{
		pairs:     ref.Pairs,
		exact:     make(map[string]int, len(ref.Pairs)),
		threshold: fuzzyThreshold,
		fileName:  fileName,
		format:    ref.Format,
		log:       log,
	}
	for i, pair := range ref.Pairs {
		key := normalizeKey(pair.Source)
		if _, ok := m.exact[key]; !ok {
			m.exact[key] = i
		}
	}
	return m
}

// Match annotates terms in place against the reference and reports lookup
// statistics. Exact matching always takes precedence over fuzzy matching.
func (m *Matcher) Match(terms []domain.Term) domain.LookupStats {
	stats := domain.LookupStats{
		TotalProcessed: len(terms),
		FileName:       m.fileName,
		FileFormat:     m.format.String(),
	}

	for i := range terms {
		term := &terms[i]
		key := normalizeKey(term.Text)

		if pos, ok := m.exact[key]; ok {
			term.Translation = m.pairs[pos].Target
			term.Provenance = domain.ProvenanceExactMatch
			stats.ExactMatches++
			continue
		}

		best, bestScore := m.bestFuzzy(key)
		if bestScore <= 0 {
			stats.OracleOnly++
			continue
		}
		stats.FuzzyMatchesFound++
		if bestScore < m.threshold {
			stats.FuzzyMatchesIgnored++
			stats.OracleOnly++
			continue
		}

		score := bestScore
		term.FuzzyReference = m.pairs[best].Target
		term.FuzzyScore = &score
		term.Provenance = domain.ProvenanceFuzzyReference
		stats.FuzzyMatchesUsed++
	}

	matched := stats.ExactMatches + stats.FuzzyMatchesUsed
	if stats.TotalProcessed > 0 {
		stats.LookupRate = round2(float64(matched) / float64(stats.TotalProcessed) * 100)
	}

	m.log.Info("reference lookup finished",
		slog.Int("terms", stats.TotalProcessed),
		slog.Int("exact", stats.ExactMatches),
		slog.Int("fuzzy_used", stats.FuzzyMatchesUsed),
		slog.Int("fuzzy_ignored", stats.FuzzyMatchesIgnored))

	return stats
}

// bestFuzzy scans all pairs for the highest-scoring source. Later pairs win
// only on strict improvement, so ties resolve to the earliest pair.
func (m *Matcher) bestFuzzy(key string) (index int, score float64) {
	index = -1
	for i, pair := range m.pairs {
		s := Similarity(key, normalizeKey(pair.Source))
		if s > score {
			score = s
			index = i
		}
	}
	return index, score
}

// Similarity scores two strings in [0,100] by character-level sequence
// matching. Identical strings score 100; strings sharing no characters
// score 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return round2(matcher.Ratio() * 100)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
