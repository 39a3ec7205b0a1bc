package domain

import (
	"math"

	"github.com/google/uuid"
)

// Relevance band boundaries used by aggregate statistics.
const (
	HighRelevanceThreshold   = 80
	MediumRelevanceThreshold = 60
)

// Statistics summarizes a term set by relevance band.
type Statistics struct {
	TotalTerms      int
	HighRelevance   int
	MediumRelevance int
	LowRelevance    int
	AvgRelevance    float64
	AvgConfidence   float64
	UniqueDomains   int
}

// LookupStats counts bilingual reference lookups for a single pipeline run.
type LookupStats struct {
	TotalProcessed      int
	ExactMatches        int
	FuzzyMatchesFound   int
	FuzzyMatchesUsed    int
	FuzzyMatchesIgnored int
	OracleOnly          int
	LookupRate          float64
	FileName            string
	FileFormat          string
}

// DerivativeStats counts derivative discovery work for a single pipeline run.
type DerivativeStats struct {
	TermsProcessed   int
	SingleWordTerms  int
	DerivativesFound int
	AvgPerTerm       float64
	ModesUsed        []DerivativeMode
}

// ExtractionResult is the final deliverable of one extraction run. It is not
// mutated after the relevance filter stage.
type ExtractionResult struct {
	RunID           uuid.UUID
	Terms           []Term
	DomainHierarchy []string
	SourceLanguage  string
	TargetLanguage  string
	LanguagePair    string

	Statistics      Statistics
	LookupStats     LookupStats
	DerivativeStats DerivativeStats

	// Metadata carries explanatory notes ("error", "warning") for runs that
	// degraded or produced no terms. Errors never escape the pipeline.
	Metadata map[string]string
}

// NewEmptyResult builds a result carrying only an explanatory metadata note.
func NewEmptyResult(key, note string) *ExtractionResult {
	return &ExtractionResult{
		RunID:           uuid.New(),
		DomainHierarchy: []string{"General"},
		Statistics:      CalculateStatistics(nil),
		Metadata:        map[string]string{key: note},
	}
}

// CalculateStatistics computes aggregate statistics over a term set.
// Averages are rounded to two decimals.
func CalculateStatistics(terms []Term) Statistics {
	stats := Statistics{TotalTerms: len(terms)}
	if len(terms) == 0 {
		return stats
	}

	var relSum, confSum float64
	domains := make(map[string]bool)

	for _, t := range terms {
		switch {
		case t.Relevance >= HighRelevanceThreshold:
			stats.HighRelevance++
		case t.Relevance >= MediumRelevanceThreshold:
			stats.MediumRelevance++
		default:
			stats.LowRelevance++
		}
		relSum += t.Relevance
		confSum += t.Confidence
		domains[t.Domain] = true
	}

	stats.AvgRelevance = round2(relSum / float64(len(terms)))
	stats.AvgConfidence = round2(confSum / float64(len(terms)))
	stats.UniqueDomains = len(domains)
	return stats
}

// FilterByRelevance returns a copy of the result keeping only terms whose
// relevance is at or above threshold, with statistics recomputed. Lookup and
// derivative statistics are carried over unchanged.
func (r *ExtractionResult) FilterByRelevance(threshold float64) *ExtractionResult {
	filtered := make([]Term, 0, len(r.Terms))
	for _, t := range r.Terms {
		if t.Relevance >= threshold {
			filtered = append(filtered, t)
		}
	}

	out := *r
	out.Terms = filtered
	out.Statistics = CalculateStatistics(filtered)
	return &out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
