package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/termscout/termscout/internal/domain"
)

func sampleResult() *domain.ExtractionResult {
	score := 92.5
	terms := []domain.Term{
		{
			Text: "invoice", Translation: "Rechnung", Domain: "Finance",
			PartOfSpeech: "NOUN", Definition: "A bill for goods or services.",
			Relevance: 90, Confidence: 85, Frequency: 3,
			Provenance: domain.ProvenanceExactMatch,
			Variants:   []string{"invoices", "invoicing"},
		},
		{
			Text: "ledger", Translation: "Hauptbuch", Domain: "Finance",
			PartOfSpeech: "NOUN", Relevance: 75, Confidence: 80, Frequency: 1,
			Provenance: domain.ProvenanceFuzzyReference,
			FuzzyScore: &score, FuzzyReference: "Kontenbuch",
			DiscoveredDerivatives: []string{"ledgers"},
		},
	}
	return &domain.ExtractionResult{
		RunID:           uuid.New(),
		Terms:           terms,
		DomainHierarchy: []string{"Finance"},
		SourceLanguage:  "en",
		TargetLanguage:  "de",
		LanguagePair:    "en-de",
		Statistics:      domain.CalculateStatistics(terms),
		Metadata:        map[string]string{},
	}
}

func TestWrite_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Write(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "invoice")
	assert.Contains(t, lines[1], "invoices; invoicing")
	assert.Contains(t, lines[2], "92.50")
	assert.Contains(t, lines[2], "Kontenbuch")
}

func TestWrite_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	result := sampleResult()

	require.NoError(t, Write(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, result.RunID.String(), doc["run_id"])
	assert.Equal(t, "en-de", doc["language_pair"])

	terms, ok := doc["terms"].([]any)
	require.True(t, ok)
	require.Len(t, terms, 2)

	first := terms[0].(map[string]any)
	assert.Equal(t, "invoice", first["term"])
	assert.Equal(t, "EXACT_MATCH", first["provenance"])

	second := terms[1].(map[string]any)
	assert.Equal(t, 92.5, second["fuzzy_score"])
	assert.Equal(t, "Kontenbuch", second["fuzzy_reference"])
}

func TestWrite_TBX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tbx")

	require.NoError(t, Write(sampleResult(), path))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "martif", root.Tag)

	entries := doc.FindElements("//termEntry")
	require.Len(t, entries, 2)

	langSets := entries[0].FindElements("langSet")
	require.Len(t, langSets, 2)
	assert.Equal(t, "invoice", langSets[0].FindElement("tig/term").Text())
	assert.Equal(t, "Rechnung", langSets[1].FindElement("tig/term").Text())

	note := entries[1].FindElement("note")
	require.NotNil(t, note)
	assert.Contains(t, note.Text(), "Kontenbuch")
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, Write(sampleResult(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Terms", "Derivatives", "Statistics"}, f.GetSheetList())

	term, err := f.GetCellValue("Terms", "A2")
	require.NoError(t, err)
	assert.Equal(t, "invoice", term)

	derivative, err := f.GetCellValue("Derivatives", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ledgers", derivative)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(sampleResult(), filepath.Join(t.TempDir(), "out.docx"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
