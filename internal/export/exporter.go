// Package export renders extraction results into glossary file formats.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/termscout/termscout/internal/domain"
)

// Write renders the result to path, choosing the format by file extension.
// Supported: .csv, .json, .tbx, .xlsx.
func Write(result *domain.ExtractionResult, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(result, path)
	case ".json":
		return writeJSON(result, path)
	case ".tbx":
		return writeTBX(result, path)
	case ".xlsx":
		return writeXLSX(result, path)
	default:
		return fmt.Errorf("export: unsupported output format %q", filepath.Ext(path))
	}
}

// joinList renders a string list for flat formats.
func joinList(items []string) string {
	return strings.Join(items, "; ")
}

func fuzzyScoreCell(t *domain.Term) string {
	if t.FuzzyScore == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *t.FuzzyScore)
}
