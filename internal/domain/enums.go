package domain

// TranslationProvenance describes how a term's translation was obtained.
type TranslationProvenance string

const (
	// ProvenanceOracle marks a translation proposed by the extraction oracle.
	ProvenanceOracle TranslationProvenance = "ORACLE"
	// ProvenanceExactMatch marks a translation copied from an exact
	// case-insensitive hit in the bilingual reference table.
	ProvenanceExactMatch TranslationProvenance = "EXACT_MATCH"
	// ProvenanceFuzzyReference marks a reference entry selected by string
	// similarity above the configured threshold.
	ProvenanceFuzzyReference TranslationProvenance = "FUZZY_REFERENCE"
)

func (p TranslationProvenance) String() string { return string(p) }

func (p TranslationProvenance) IsValid() bool {
	switch p {
	case ProvenanceOracle, ProvenanceExactMatch, ProvenanceFuzzyReference:
		return true
	}
	return false
}

// DerivativeMode selects how derivative discovery scans the source text.
type DerivativeMode string

const (
	// ModePrefix matches the base term followed by extra word characters
	// ("machine" → "machines", "machinery").
	ModePrefix DerivativeMode = "prefix"
	// ModeSuffix matches extra word characters followed by the base term
	// ("machine" → "unmachine").
	ModeSuffix DerivativeMode = "suffix"
	// ModeAny matches the base term anywhere inside a longer word.
	ModeAny DerivativeMode = "any"
)

func (m DerivativeMode) String() string { return string(m) }

func (m DerivativeMode) IsValid() bool {
	switch m {
	case ModePrefix, ModeSuffix, ModeAny:
		return true
	}
	return false
}

// BilingualFormat identifies the dialect of a bilingual reference file.
type BilingualFormat string

const (
	FormatXLIFF    BilingualFormat = "xliff"
	FormatSDLXLIFF BilingualFormat = "sdlxliff"
	FormatMQXLIFF  BilingualFormat = "mqxliff"
	FormatUnknown  BilingualFormat = "unknown"
)

func (f BilingualFormat) String() string { return string(f) }
