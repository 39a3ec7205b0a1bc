package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/termscout/termscout/internal/bilingual"
	"github.com/termscout/termscout/internal/config"
	"github.com/termscout/termscout/internal/derivative"
	"github.com/termscout/termscout/internal/domain"
)

// Pipeline runs a full extraction: chunking, oracle extraction, deduplication,
// optional bilingual lookup, optional derivative discovery and the final
// relevance filter. Degraded stages are reported through result metadata;
// Run itself never returns an error.
type Pipeline struct {
	cfg    *config.Config
	oracle TermOracle
	finder *derivative.Finder
	log    *slog.Logger
}

func NewPipeline(cfg *config.Config, oracle TermOracle, log *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		oracle: oracle,
		finder: derivative.NewFinder(
			derivative.ParseModes(cfg.Derivative.Modes),
			cfg.Derivative.MinLength,
			cfg.Derivative.MaxPerTerm,
			cfg.Derivative.CaseSensitive,
			log,
		),
		log: log,
	}
}

// Run extracts terminology from text. Empty input and oracle-wide failures
// produce an empty result with an explanatory metadata note instead of an
// error, so callers always get a renderable result.
func (p *Pipeline) Run(ctx context.Context, text string) *domain.ExtractionResult {
	srcLang := domain.NormalizeLanguageCode(p.cfg.Extraction.SourceLanguage)
	// No configured target means a monolingual run: the pair resolves to
	// source-source and no translation is requested from the oracle.
	tgtLang := srcLang
	if strings.TrimSpace(p.cfg.Extraction.TargetLanguage) != "" {
		tgtLang = domain.NormalizeLanguageCode(p.cfg.Extraction.TargetLanguage)
	}

	if strings.TrimSpace(text) == "" {
		p.log.Warn("nothing to extract", slog.String("reason", domain.ErrEmptyInput.Error()))
		return p.emptyResult("warning", domain.ErrEmptyInput.Error(), srcLang, tgtLang)
	}

	chunks := Chunk(text, p.cfg.Extraction.ChunkSize)
	p.log.Info("starting extraction",
		slog.Int("chunks", len(chunks)),
		slog.String("language_pair", srcLang+"-"+tgtLang))

	orch := NewOrchestrator(p.oracle, p.log)
	out, err := orch.Run(ctx, chunks, srcLang, tgtLang, p.cfg.Extraction.DomainPath)
	if err != nil {
		p.log.Error("extraction aborted", slog.String("error", err.Error()))
		return p.emptyResult("error", err.Error(), srcLang, tgtLang)
	}

	terms := Deduplicate(out.Terms)

	result := &domain.ExtractionResult{
		RunID:           uuid.New(),
		Terms:           terms,
		DomainHierarchy: out.DomainHierarchy,
		SourceLanguage:  srcLang,
		TargetLanguage:  tgtLang,
		LanguagePair:    srcLang + "-" + tgtLang,
		Metadata:        map[string]string{},
	}
	if len(result.DomainHierarchy) == 0 {
		result.DomainHierarchy = domain.ParseDomainPath(p.cfg.Extraction.DomainPath)
	}
	if out.ChunksFailed > 0 {
		result.Metadata["warning"] = fmt.Sprintf("%d of %d chunks skipped", out.ChunksFailed, out.ChunksTotal)
	}

	p.matchReference(result)
	p.discoverDerivatives(result, text)

	result.Statistics = domain.CalculateStatistics(result.Terms)
	return result.FilterByRelevance(p.cfg.Extraction.RelevanceThreshold)
}

// matchReference runs the bilingual lookup stage when it is enabled. A
// reference file that cannot be parsed disables the stage for this run and
// leaves a note in the result metadata.
func (p *Pipeline) matchReference(result *domain.ExtractionResult) {
	if !p.cfg.Lookup.Enabled || p.cfg.Lookup.ReferencePath == "" {
		return
	}

	ref, err := bilingual.ParseFile(p.cfg.Lookup.ReferencePath)
	if err != nil {
		p.log.Warn("reference lookup disabled for this run",
			slog.String("path", p.cfg.Lookup.ReferencePath),
			slog.String("error", err.Error()))
		result.Metadata["lookup_warning"] = err.Error()
		return
	}

	matcher := bilingual.NewMatcher(ref, p.cfg.Lookup.FuzzyThreshold,
		filepath.Base(p.cfg.Lookup.ReferencePath), p.log)
	result.LookupStats = matcher.Match(result.Terms)
}

func (p *Pipeline) discoverDerivatives(result *domain.ExtractionResult, text string) {
	if !p.cfg.Derivative.Enabled {
		return
	}
	result.DerivativeStats = p.finder.Enrich(result.Terms, text)
}

func (p *Pipeline) emptyResult(key, note, srcLang, tgtLang string) *domain.ExtractionResult {
	result := domain.NewEmptyResult(key, note)
	result.SourceLanguage = srcLang
	result.TargetLanguage = tgtLang
	result.LanguagePair = srcLang + "-" + tgtLang
	return result
}
