package domain

// Term is a single extracted terminology candidate with oracle metadata and
// any enrichment applied by the pipeline. Mutable while the pipeline runs,
// treated as immutable once it is part of a returned ExtractionResult.
type Term struct {
	Text         string
	Translation  string
	Domain       string
	Subdomain    string
	PartOfSpeech string
	Definition   string
	Context      string

	// Scores are percentages in [0,100].
	Relevance  float64
	Confidence float64

	Frequency      int
	IsCompound     bool
	IsAbbreviation bool
	Variants       []string
	RelatedTerms   []string

	// Provenance describes where Translation (or the fuzzy reference) came
	// from. FuzzyScore and FuzzyReference are set only for FUZZY_REFERENCE.
	Provenance     TranslationProvenance
	FuzzyScore     *float64
	FuzzyReference string

	// DiscoveredDerivatives holds surface forms found in the source text by
	// derivative discovery. Nil when discovery did not run or found nothing.
	DiscoveredDerivatives []string
}

// HasFuzzyMatch returns true if the term carries a fuzzy reference match.
func (t *Term) HasFuzzyMatch() bool {
	return t.Provenance == ProvenanceFuzzyReference && t.FuzzyScore != nil
}
