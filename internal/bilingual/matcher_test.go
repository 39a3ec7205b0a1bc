package bilingual

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termscout/termscout/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMatcher(pairs []Pair, threshold float64) *Matcher {
	ref := &Reference{Format: domain.FormatXLIFF, Pairs: pairs}
	return NewMatcher(ref, threshold, "reference.xliff", testLogger())
}

func TestSimilarity_Bounds(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("invoice", "invoice"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.Equal(t, 0.0, Similarity("", "abc"))

	// Shared characters in different order still score above zero.
	assert.Greater(t, Similarity("ab", "ba"), 0.0)
	assert.Less(t, Similarity("invoice", "invoices"), 100.0)
}

func TestMatch_ExactOverwritesTranslation(t *testing.T) {
	// The second pair would win a pure similarity contest, but exact
	// matching always takes precedence over fuzzy matching.
	m := newTestMatcher([]Pair{
		{Source: "Invoice", Target: "Rechnung"},
		{Source: "invoicee", Target: "Falsch"},
	}, 70)
	terms := []domain.Term{
		{Text: "invoice", Translation: "Faktura", Provenance: domain.ProvenanceOracle},
	}

	stats := m.Match(terms)

	assert.Equal(t, 1, stats.ExactMatches)
	assert.Equal(t, "Rechnung", terms[0].Translation)
	assert.Equal(t, domain.ProvenanceExactMatch, terms[0].Provenance)
	assert.Nil(t, terms[0].FuzzyScore)
}

func TestMatch_FuzzyAnnotatesWithoutOverwriting(t *testing.T) {
	m := newTestMatcher([]Pair{{Source: "invoice", Target: "Rechnung"}}, 70)
	terms := []domain.Term{
		{Text: "invoices", Translation: "Fakturen", Provenance: domain.ProvenanceOracle},
	}

	stats := m.Match(terms)

	assert.Equal(t, 0, stats.ExactMatches)
	assert.Equal(t, 1, stats.FuzzyMatchesUsed)
	assert.Equal(t, "Fakturen", terms[0].Translation)
	assert.Equal(t, "Rechnung", terms[0].FuzzyReference)
	assert.Equal(t, domain.ProvenanceFuzzyReference, terms[0].Provenance)
	require.NotNil(t, terms[0].FuzzyScore)
	assert.Greater(t, *terms[0].FuzzyScore, 70.0)
}

func TestMatch_ThresholdIsInclusive(t *testing.T) {
	score := Similarity("invoices", "invoice")

	m := newTestMatcher([]Pair{{Source: "invoice", Target: "Rechnung"}}, score)
	terms := []domain.Term{{Text: "invoices"}}
	stats := m.Match(terms)
	assert.Equal(t, 1, stats.FuzzyMatchesUsed)

	m = newTestMatcher([]Pair{{Source: "invoice", Target: "Rechnung"}}, score+0.01)
	terms = []domain.Term{{Text: "invoices"}}
	stats = m.Match(terms)
	assert.Equal(t, 0, stats.FuzzyMatchesUsed)
	assert.Equal(t, 1, stats.FuzzyMatchesIgnored)
	assert.Equal(t, 1, stats.OracleOnly)
}

func TestMatch_ExactIndexFirstStoredWins(t *testing.T) {
	m := newTestMatcher([]Pair{
		{Source: "Invoice", Target: "Rechnung"},
		{Source: "INVOICE", Target: "Faktura"},
	}, 70)
	terms := []domain.Term{{Text: "invoice"}}

	m.Match(terms)

	assert.Equal(t, "Rechnung", terms[0].Translation)
}

func TestMatch_LookupRate(t *testing.T) {
	m := newTestMatcher([]Pair{
		{Source: "invoice", Target: "Rechnung"},
		{Source: "account", Target: "Konto"},
	}, 95)
	terms := []domain.Term{
		{Text: "invoice"},
		{Text: "account"},
		{Text: "zzzz"},
		{Text: "qqqq"},
	}

	stats := m.Match(terms)

	assert.Equal(t, 2, stats.ExactMatches)
	assert.Equal(t, 50.0, stats.LookupRate)
	assert.Equal(t, "reference.xliff", stats.FileName)
	assert.Equal(t, domain.FormatXLIFF.String(), stats.FileFormat)
}

func TestMatch_EmptyReference(t *testing.T) {
	m := newTestMatcher(nil, 70)
	terms := []domain.Term{{Text: "anything", Translation: "irgendwas"}}

	stats := m.Match(terms)

	assert.Equal(t, 1, stats.OracleOnly)
	assert.Equal(t, "irgendwas", terms[0].Translation)
}
