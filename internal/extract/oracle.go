package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/termscout/termscout/internal/domain"
)

// OracleRequest carries one chunk of text to the term oracle.
type OracleRequest struct {
	Text       string
	SourceLang string
	TargetLang string
	DomainPath string
	// ChunkHint positions the chunk within the document ("Chunk 2 of 5").
	// Empty when the document fits in a single chunk.
	ChunkHint string
}

// OracleResponse is the structured payload recovered from one oracle call.
type OracleResponse struct {
	Terms           []domain.Term
	DomainHierarchy []string
}

// TermOracle proposes raw term candidates for a chunk of text. Its output is
// untrusted: implementations return an *OracleError when the response cannot
// be parsed as valid structured data.
type TermOracle interface {
	ExtractTerms(ctx context.Context, req OracleRequest) (*OracleResponse, error)
}

// OracleError reports a malformed or empty oracle response. It is recovered
// at chunk granularity by the orchestrator and is never fatal to a run.
type OracleError struct {
	Reason string
	Err    error
}

func (e *OracleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle: %s: %v", e.Reason, e.Err)
	}
	return "oracle: " + e.Reason
}

func (e *OracleError) Unwrap() error { return e.Err }

// DecodeResponse parses the oracle's JSON payload into typed terms.
//
// The payload is duck-typed and may be partially malformed, so every field is
// coerced defensively: numeric fields default to 0 when absent or non-numeric
// (frequency to 1), scores are clamped into [0,100], domain defaults to
// "General", part of speech to "NOUN", and list fields to empty.
func DecodeResponse(content string) (*OracleResponse, error) {
	var payload struct {
		Terms           []map[string]any `json:"terms"`
		DomainHierarchy []string         `json:"domain_hierarchy"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, &OracleError{Reason: "response is not valid JSON", Err: err}
	}

	resp := &OracleResponse{DomainHierarchy: payload.DomainHierarchy}
	for _, record := range payload.Terms {
		term := decodeTerm(record)
		if term.Text == "" {
			continue
		}
		resp.Terms = append(resp.Terms, term)
	}
	return resp, nil
}

func decodeTerm(record map[string]any) domain.Term {
	freq := asInt(record["frequency"])
	if freq < 1 {
		freq = 1
	}

	return domain.Term{
		Text:           domain.CleanText(asString(record["term"])),
		Translation:    domain.CleanText(asString(record["translation"])),
		Domain:         stringOr(record["domain"], "General"),
		Subdomain:      asString(record["subdomain"]),
		PartOfSpeech:   stringOr(record["pos"], "NOUN"),
		Definition:     domain.CleanText(asString(record["definition"])),
		Context:        domain.CleanText(asString(record["context"])),
		Relevance:      clampScore(asFloat(record["relevance_score"])),
		Confidence:     clampScore(asFloat(record["confidence_score"])),
		Frequency:      freq,
		IsCompound:     asBool(record["is_compound"]),
		IsAbbreviation: asBool(record["is_abbreviation"]),
		Variants:       asStringSlice(record["variants"]),
		RelatedTerms:   asStringSlice(record["related_terms"]),
		Provenance:     domain.ProvenanceOracle,
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func asInt(v any) int {
	return int(asFloat(v))
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
