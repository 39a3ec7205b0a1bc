package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/termscout/termscout/internal/domain"
)

// writeXLSX renders a workbook with a term table, a derivative sheet and a
// statistics sheet.
func writeXLSX(result *domain.ExtractionResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const termsSheet = "Terms"
	if err := f.SetSheetName("Sheet1", termsSheet); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(termsSheet, "A1", &header); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	for i := range result.Terms {
		t := &result.Terms[i]
		row := []any{
			t.Text, t.Translation, t.Domain, t.Subdomain, t.PartOfSpeech,
			t.Definition, t.Context, t.Relevance, t.Confidence, t.Frequency,
			t.IsCompound, t.IsAbbreviation, t.Provenance.String(),
			fuzzyScoreCell(t), t.FuzzyReference, joinList(t.Variants),
			joinList(t.RelatedTerms), joinList(t.DiscoveredDerivatives),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		if err := f.SetSheetRow(termsSheet, cell, &row); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	}

	if err := writeDerivativesSheet(f, result); err != nil {
		return err
	}
	if err := writeStatisticsSheet(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	return nil
}

func writeDerivativesSheet(f *excelize.File, result *domain.ExtractionResult) error {
	const sheet = "Derivatives"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Term", "Derivative"}); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	row := 2
	for i := range result.Terms {
		t := &result.Terms[i]
		for _, d := range t.DiscoveredDerivatives {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &[]any{t.Text, d}); err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			row++
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, result *domain.ExtractionResult) error {
	const sheet = "Statistics"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	stats := result.Statistics
	lookup := result.LookupStats
	rows := [][]any{
		{"Run ID", result.RunID.String()},
		{"Language pair", result.LanguagePair},
		{"Total terms", stats.TotalTerms},
		{"High relevance (>=80)", stats.HighRelevance},
		{"Medium relevance (60-79)", stats.MediumRelevance},
		{"Low relevance (<60)", stats.LowRelevance},
		{"Average relevance", stats.AvgRelevance},
		{"Average confidence", stats.AvgConfidence},
		{"Unique domains", stats.UniqueDomains},
		{"Reference file", lookup.FileName},
		{"Exact matches", lookup.ExactMatches},
		{"Fuzzy matches used", lookup.FuzzyMatchesUsed},
		{"Lookup rate (%)", lookup.LookupRate},
		{"Derivatives found", result.DerivativeStats.DerivativesFound},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	}
	return nil
}
