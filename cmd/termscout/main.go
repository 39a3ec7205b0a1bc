// Command termscout extracts domain terminology from a document and writes a
// bilingual glossary. Extraction is LLM-assisted; translations can be
// cross-checked against an XLIFF/SDLXLIFF/MQXLIFF reference file.
//
// Flags:
//
//	--input        path to the input document (txt, html, xml, docx)
//	--output       path to the output glossary (csv, json, tbx, xlsx)
//	--reference    optional bilingual reference file
//	--source-lang  source language override
//	--target-lang  target language override
//	--domain       domain hint, slash-separated ("Legal/Contracts")
//	--derivatives  enable derivative discovery
//	--threshold    minimum relevance score to keep a term
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	anthropicadapter "github.com/termscout/termscout/internal/adapter/anthropic"
	"github.com/termscout/termscout/internal/adapter/docparser"
	"github.com/termscout/termscout/internal/app"
	"github.com/termscout/termscout/internal/config"
	"github.com/termscout/termscout/internal/domain"
	"github.com/termscout/termscout/internal/export"
	"github.com/termscout/termscout/internal/extract"
)

func main() {
	inputFlag := flag.String("input", "", "path to the input document")
	outputFlag := flag.String("output", "glossary.csv", "path to the output glossary")
	referenceFlag := flag.String("reference", "", "bilingual reference file (xliff, sdlxliff, mqxliff)")
	sourceLangFlag := flag.String("source-lang", "", "source language override")
	targetLangFlag := flag.String("target-lang", "", "target language override")
	domainFlag := flag.String("domain", "", "domain hint, slash-separated")
	derivativesFlag := flag.Bool("derivatives", false, "enable derivative discovery")
	thresholdFlag := flag.Float64("threshold", -1, "minimum relevance score to keep a term")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *sourceLangFlag != "" {
		cfg.Extraction.SourceLanguage = *sourceLangFlag
	}
	if *targetLangFlag != "" {
		cfg.Extraction.TargetLanguage = *targetLangFlag
	}
	if *domainFlag != "" {
		cfg.Extraction.DomainPath = *domainFlag
	}
	if *referenceFlag != "" {
		cfg.Lookup.Enabled = true
		cfg.Lookup.ReferencePath = *referenceFlag
	}
	if *derivativesFlag {
		cfg.Derivative.Enabled = true
	}
	if *thresholdFlag >= 0 {
		cfg.Extraction.RelevanceThreshold = *thresholdFlag
	}
	cfg.Normalize()

	if *inputFlag == "" {
		logger.Error("--input is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// An unreadable input document is fatal to extraction, but the run still
	// produces an explanatory empty glossary instead of nothing at all.
	var result *domain.ExtractionResult
	text, err := docparser.Parse(*inputFlag)
	if err != nil {
		logger.Error("read input document",
			slog.String("path", *inputFlag),
			slog.String("error", err.Error()))
		result = domain.NewEmptyResult("error", err.Error())
	} else {
		oracle := anthropicadapter.NewOracle(cfg.Oracle, logger)
		pipeline := extract.NewPipeline(cfg, oracle, logger)
		result = pipeline.Run(ctx, text)
		oracle.LogUsage()
	}

	if note, ok := result.Metadata["error"]; ok {
		logger.Error("extraction failed", slog.String("reason", note))
	}
	if note, ok := result.Metadata["warning"]; ok {
		logger.Warn("extraction degraded", slog.String("reason", note))
	}

	if err := export.Write(result, *outputFlag); err != nil {
		logger.Error("write glossary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("glossary written",
		slog.String("path", *outputFlag),
		slog.String("run_id", result.RunID.String()),
		slog.Int("terms", result.Statistics.TotalTerms),
		slog.Float64("avg_relevance", result.Statistics.AvgRelevance))
}
