package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/termscout/termscout/internal/domain"
)

// jsonDocument is the full export projection of an extraction result.
type jsonDocument struct {
	RunID           string                 `json:"run_id"`
	LanguagePair    string                 `json:"language_pair"`
	SourceLanguage  string                 `json:"source_language"`
	TargetLanguage  string                 `json:"target_language"`
	DomainHierarchy []string               `json:"domain_hierarchy"`
	Terms           []jsonTerm             `json:"terms"`
	Statistics      domain.Statistics      `json:"statistics"`
	LookupStats     domain.LookupStats     `json:"lookup_stats"`
	DerivativeStats domain.DerivativeStats `json:"derivative_stats"`
	Metadata        map[string]string      `json:"metadata,omitempty"`
}

type jsonTerm struct {
	Term           string   `json:"term"`
	Translation    string   `json:"translation"`
	Domain         string   `json:"domain"`
	Subdomain      string   `json:"subdomain,omitempty"`
	PartOfSpeech   string   `json:"pos"`
	Definition     string   `json:"definition,omitempty"`
	Context        string   `json:"context,omitempty"`
	Relevance      float64  `json:"relevance_score"`
	Confidence     float64  `json:"confidence_score"`
	Frequency      int      `json:"frequency"`
	IsCompound     bool     `json:"is_compound"`
	IsAbbreviation bool     `json:"is_abbreviation"`
	Provenance     string   `json:"provenance"`
	FuzzyScore     *float64 `json:"fuzzy_score,omitempty"`
	FuzzyReference string   `json:"fuzzy_reference,omitempty"`
	Variants       []string `json:"variants,omitempty"`
	RelatedTerms   []string `json:"related_terms,omitempty"`
	Derivatives    []string `json:"derivatives,omitempty"`
}

func writeJSON(result *domain.ExtractionResult, path string) error {
	doc := jsonDocument{
		RunID:           result.RunID.String(),
		LanguagePair:    result.LanguagePair,
		SourceLanguage:  result.SourceLanguage,
		TargetLanguage:  result.TargetLanguage,
		DomainHierarchy: result.DomainHierarchy,
		Terms:           make([]jsonTerm, 0, len(result.Terms)),
		Statistics:      result.Statistics,
		LookupStats:     result.LookupStats,
		DerivativeStats: result.DerivativeStats,
		Metadata:        result.Metadata,
	}
	for i := range result.Terms {
		t := &result.Terms[i]
		doc.Terms = append(doc.Terms, jsonTerm{
			Term:           t.Text,
			Translation:    t.Translation,
			Domain:         t.Domain,
			Subdomain:      t.Subdomain,
			PartOfSpeech:   t.PartOfSpeech,
			Definition:     t.Definition,
			Context:        t.Context,
			Relevance:      t.Relevance,
			Confidence:     t.Confidence,
			Frequency:      t.Frequency,
			IsCompound:     t.IsCompound,
			IsAbbreviation: t.IsAbbreviation,
			Provenance:     t.Provenance.String(),
			FuzzyScore:     t.FuzzyScore,
			FuzzyReference: t.FuzzyReference,
			Variants:       t.Variants,
			RelatedTerms:   t.RelatedTerms,
			Derivatives:    t.DiscoveredDerivatives,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
