package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/termscout/termscout/internal/domain"
)

// Orchestrator drives the oracle over all chunks of a document sequentially
// and merges the per-chunk responses into a single ordered term list.
type Orchestrator struct {
	oracle TermOracle
	log    *slog.Logger
}

func NewOrchestrator(oracle TermOracle, log *slog.Logger) *Orchestrator {
	return &Orchestrator{oracle: oracle, log: log}
}

// ExtractionOutput aggregates oracle responses across chunks. Terms keep the
// order in which chunks produced them; DomainHierarchy comes from the first
// chunk that reported one.
type ExtractionOutput struct {
	Terms           []domain.Term
	DomainHierarchy []string
	ChunksTotal     int
	ChunksFailed    int
}

// Run calls the oracle once per chunk. A chunk whose response fails to parse
// is logged and skipped; remaining chunks are still processed. Errors that
// are not chunk-recoverable (context cancellation, transport failures wrapped
// outside *OracleError) abort the run.
func (o *Orchestrator) Run(ctx context.Context, chunks []string, sourceLang, targetLang, domainPath string) (*ExtractionOutput, error) {
	out := &ExtractionOutput{ChunksTotal: len(chunks)}

	for i, chunk := range chunks {
		req := OracleRequest{
			Text:       chunk,
			SourceLang: sourceLang,
			TargetLang: targetLang,
			DomainPath: domainPath,
		}
		if len(chunks) > 1 {
			req.ChunkHint = fmt.Sprintf("Chunk %d of %d", i+1, len(chunks))
		}

		resp, err := o.oracle.ExtractTerms(ctx, req)
		if err != nil {
			var oerr *OracleError
			if errors.As(err, &oerr) {
				out.ChunksFailed++
				o.log.Warn("skipping chunk with unusable oracle response",
					slog.Int("chunk", i+1),
					slog.Int("total", len(chunks)),
					slog.String("reason", oerr.Reason))
				continue
			}
			return nil, fmt.Errorf("extract chunk %d/%d: %w", i+1, len(chunks), err)
		}

		out.Terms = append(out.Terms, resp.Terms...)
		if len(out.DomainHierarchy) == 0 && len(resp.DomainHierarchy) > 0 {
			out.DomainHierarchy = resp.DomainHierarchy
		}

		o.log.Debug("chunk extracted",
			slog.Int("chunk", i+1),
			slog.Int("total", len(chunks)),
			slog.Int("terms", len(resp.Terms)))
	}

	return out, nil
}
