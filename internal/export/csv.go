package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/termscout/termscout/internal/domain"
)

var csvHeader = []string{
	"Term", "Translation", "Domain", "Subdomain", "Part of Speech",
	"Definition", "Context", "Relevance", "Confidence", "Frequency",
	"Compound", "Abbreviation", "Provenance", "Fuzzy Score",
	"Fuzzy Reference", "Variants", "Related Terms", "Derivatives",
}

// writeCSV renders the term table as UTF-8 CSV. A BOM is prepended so
// spreadsheet applications detect the encoding.
func writeCSV(result *domain.ExtractionResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	for i := range result.Terms {
		t := &result.Terms[i]
		record := []string{
			t.Text,
			t.Translation,
			t.Domain,
			t.Subdomain,
			t.PartOfSpeech,
			t.Definition,
			t.Context,
			strconv.FormatFloat(t.Relevance, 'f', 2, 64),
			strconv.FormatFloat(t.Confidence, 'f', 2, 64),
			strconv.Itoa(t.Frequency),
			strconv.FormatBool(t.IsCompound),
			strconv.FormatBool(t.IsAbbreviation),
			t.Provenance.String(),
			fuzzyScoreCell(t),
			t.FuzzyReference,
			joinList(t.Variants),
			joinList(t.RelatedTerms),
			joinList(t.DiscoveredDerivatives),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}
