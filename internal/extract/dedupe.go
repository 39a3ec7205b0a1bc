package extract

import (
	"strings"

	"github.com/termscout/termscout/internal/domain"
)

// Deduplicate merges terms that share the same case-insensitive
// (text, translation) pair. The first occurrence keeps its casing and
// descriptive fields; duplicates contribute their frequency (summed), the
// higher relevance and confidence scores, and any new variants or related
// terms. Output order follows first occurrence.
func Deduplicate(terms []domain.Term) []domain.Term {
	seen := make(map[string]int, len(terms))
	out := make([]domain.Term, 0, len(terms))

	for _, t := range terms {
		key := strings.ToLower(t.Text) + "\x00" + strings.ToLower(t.Translation)

		pos, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, t)
			continue
		}

		kept := &out[pos]
		kept.Frequency += t.Frequency
		if t.Relevance > kept.Relevance {
			kept.Relevance = t.Relevance
		}
		if t.Confidence > kept.Confidence {
			kept.Confidence = t.Confidence
		}
		kept.Variants = mergeUnique(kept.Variants, t.Variants)
		kept.RelatedTerms = mergeUnique(kept.RelatedTerms, t.RelatedTerms)
	}

	return out
}

// mergeUnique appends items from extra not already present in base.
// Comparison is case-sensitive; order of first appearance is kept.
func mergeUnique(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	present := make(map[string]struct{}, len(base))
	for _, v := range base {
		present[v] = struct{}{}
	}
	for _, v := range extra {
		if _, ok := present[v]; ok {
			continue
		}
		present[v] = struct{}{}
		base = append(base, v)
	}
	return base
}
