// Package derivative discovers morphological variants of extracted terms by
// scanning the source document for words built on a term's stem.
package derivative

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/termscout/termscout/internal/domain"
)

// wordChars matches a single character that can appear inside a word.
// Unicode letters and digits keep the scan working on non-ASCII documents.
const wordChars = `[\p{L}\p{N}_]`

const patternCacheSize = 512

// Finder scans document text for derivatives of single-word terms.
type Finder struct {
	modes         []domain.DerivativeMode
	minLength     int
	maxPerTerm    int
	caseSensitive bool
	patterns      *lru.Cache[string, *regexp.Regexp]
	log           *slog.Logger
}

func NewFinder(modes []domain.DerivativeMode, minLength, maxPerTerm int, caseSensitive bool, log *slog.Logger) *Finder {
	cache, _ := lru.New[string, *regexp.Regexp](patternCacheSize)
	return &Finder{
		modes:         modes,
		minLength:     minLength,
		maxPerTerm:    maxPerTerm,
		caseSensitive: caseSensitive,
		patterns:      cache,
		log:           log,
	}
}

// ParseModes converts a comma-separated mode list into typed modes.
// Unknown names are dropped; an empty result falls back to prefix+suffix.
func ParseModes(list string) []domain.DerivativeMode {
	var modes []domain.DerivativeMode
	for _, part := range strings.Split(list, ",") {
		mode := domain.DerivativeMode(strings.TrimSpace(strings.ToLower(part)))
		if mode.IsValid() {
			modes = append(modes, mode)
		}
	}
	if len(modes) == 0 {
		modes = []domain.DerivativeMode{domain.ModePrefix, domain.ModeSuffix}
	}
	return modes
}

// Find returns the derivatives of term present in text, sorted
// case-insensitively and truncated to the per-term limit. The base term
// itself is never reported. Only single-word terms are searched.
func (f *Finder) Find(term, text string) []string {
	term = strings.TrimSpace(term)
	if term == "" || text == "" || !domain.IsSingleWord(term) {
		return nil
	}

	seen := make(map[string]struct{})
	var found []string

	for _, mode := range f.modes {
		re := f.pattern(term, mode)
		if re == nil {
			continue
		}
		for _, match := range re.FindAllString(text, -1) {
			match = strings.TrimSpace(match)
			if !f.acceptable(term, match) {
				continue
			}
			key := match
			if !f.caseSensitive {
				key = strings.ToLower(match)
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			found = append(found, match)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	if f.maxPerTerm > 0 && len(found) > f.maxPerTerm {
		found = found[:f.maxPerTerm]
	}
	return found
}

// Enrich discovers derivatives for every single-word term and attaches them
// to the terms in place. Discovered forms are also merged into the term's
// variant list. Multi-word terms are skipped.
func (f *Finder) Enrich(terms []domain.Term, text string) domain.DerivativeStats {
	stats := domain.DerivativeStats{
		TermsProcessed: len(terms),
		ModesUsed:      f.modes,
	}

	for i := range terms {
		if !domain.IsSingleWord(terms[i].Text) {
			continue
		}
		stats.SingleWordTerms++

		derivatives := f.Find(terms[i].Text, text)
		if len(derivatives) == 0 {
			continue
		}
		terms[i].DiscoveredDerivatives = derivatives
		terms[i].Variants = mergeVariants(terms[i].Variants, derivatives)
		stats.DerivativesFound += len(derivatives)
	}

	if stats.SingleWordTerms > 0 {
		stats.AvgPerTerm = float64(stats.DerivativesFound) / float64(stats.SingleWordTerms)
	}

	f.log.Debug("derivative discovery finished",
		slog.Int("single_word_terms", stats.SingleWordTerms),
		slog.Int("derivatives", stats.DerivativesFound))

	return stats
}

// mergeVariants unions discovered forms into the existing variant list and
// keeps the result sorted case-insensitively. The union is case-sensitive,
// matching how the dedup stage unions variant lists.
func mergeVariants(variants, derivatives []string) []string {
	present := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		present[v] = struct{}{}
	}
	for _, d := range derivatives {
		if _, ok := present[d]; ok {
			continue
		}
		present[d] = struct{}{}
		variants = append(variants, d)
	}
	sort.SliceStable(variants, func(i, j int) bool {
		return strings.ToLower(variants[i]) < strings.ToLower(variants[j])
	})
	return variants
}

func (f *Finder) acceptable(term, match string) bool {
	if match == "" {
		return false
	}
	if len([]rune(match)) < f.minLength {
		return false
	}
	if f.caseSensitive {
		return match != term
	}
	return !strings.EqualFold(match, term)
}

// pattern compiles (or fetches from cache) the regex for one term and mode.
func (f *Finder) pattern(term string, mode domain.DerivativeMode) *regexp.Regexp {
	key := fmt.Sprintf("%s\x00%s\x00%t", term, mode, f.caseSensitive)
	if re, ok := f.patterns.Get(key); ok {
		return re
	}

	quoted := regexp.QuoteMeta(term)
	var expr string
	switch mode {
	case domain.ModePrefix:
		expr = `\b` + quoted + wordChars + `+`
	case domain.ModeSuffix:
		expr = wordChars + `+` + quoted + `\b`
	case domain.ModeAny:
		expr = wordChars + `*` + quoted + wordChars + `*`
	default:
		return nil
	}
	if !f.caseSensitive {
		expr = `(?i)` + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		f.log.Warn("skipping uncompilable derivative pattern",
			slog.String("term", term), slog.String("mode", mode.String()))
		return nil
	}
	f.patterns.Add(key, re)
	return re
}
