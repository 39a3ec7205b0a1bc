package domain

import "errors"

// Sentinel errors used across the pipeline and its adapters.
//
// Only input errors abort a whole extraction; everything else degrades one
// optional capability and lets the run continue. The pipeline itself never
// returns an error to callers — failures surface as explanatory metadata on
// an otherwise empty ExtractionResult.
var (
	ErrInputUnreadable   = errors.New("input file unreadable")
	ErrEmptyInput        = errors.New("input is empty")
	ErrReferenceParse    = errors.New("bilingual reference parse failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
