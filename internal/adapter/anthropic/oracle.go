// Package anthropic implements the term oracle on top of the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/termscout/termscout/internal/config"
	"github.com/termscout/termscout/internal/extract"
)

const systemPrompt = `You are a professional terminologist extracting domain terminology from documents for translation glossaries.

You identify genuine technical terms: domain-specific nouns, verbs, compounds and abbreviations. You skip general vocabulary, function words and proper names of people.

Output ONLY a valid JSON object, no markdown, no explanations.`

// Oracle calls Claude once per chunk and decodes the structured response.
type Oracle struct {
	client anthropic.Client
	model  string
	tokens int64
	log    *slog.Logger

	// usage counters accumulate across chunks for end-of-run reporting
	inputTokens  int64
	outputTokens int64
	calls        int
}

func NewOracle(cfg config.OracleConfig, log *slog.Logger) *Oracle {
	return &Oracle{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
		tokens: int64(cfg.MaxTokens),
		log:    log,
	}
}

// ExtractTerms sends one chunk to the model. Transport failures are returned
// as-is; unusable responses are wrapped in *extract.OracleError so the caller
// can skip the chunk.
func (o *Oracle) ExtractTerms(ctx context.Context, req extract.OracleRequest) (*extract.OracleResponse, error) {
	msg, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(o.model),
		MaxTokens: o.tokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(req))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("oracle api call: %w", err)
	}

	o.calls++
	o.inputTokens += msg.Usage.InputTokens
	o.outputTokens += msg.Usage.OutputTokens

	if len(msg.Content) == 0 {
		return nil, &extract.OracleError{Reason: "empty response"}
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, &extract.OracleError{Reason: "no JSON object in response", Err: err}
	}

	resp, err := extract.DecodeResponse(jsonStr)
	if err != nil {
		return nil, err
	}

	o.log.Debug("oracle call finished",
		slog.Int("terms", len(resp.Terms)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return resp, nil
}

// LogUsage reports accumulated token usage for the whole run.
func (o *Oracle) LogUsage() {
	o.log.Info("oracle usage",
		slog.Int("calls", o.calls),
		slog.Int64("input_tokens", o.inputTokens),
		slog.Int64("output_tokens", o.outputTokens))
}

// buildPrompt creates the user prompt for a single chunk.
func buildPrompt(req extract.OracleRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Extract terminology from the following %s text.", req.SourceLang)
	if req.TargetLang != "" && req.TargetLang != req.SourceLang {
		fmt.Fprintf(&b, " Provide translations into %s.", req.TargetLang)
	}
	b.WriteString("\n")
	if req.DomainPath != "" {
		fmt.Fprintf(&b, "The document belongs to the domain: %s.\n", req.DomainPath)
	}
	if req.ChunkHint != "" {
		fmt.Fprintf(&b, "This is a part of a larger document (%s).\n", req.ChunkHint)
	}

	b.WriteString(`
Output ONLY a valid JSON object matching this exact schema:
{
  "domain_hierarchy": ["<top-level domain>", "<subdomain>", ...],
  "terms": [
    {
      "term": "<term as it appears in the text>",
      "translation": "<translation>",
      "domain": "<domain>",
      "subdomain": "<subdomain or empty>",
      "pos": "<NOUN|VERB|ADJECTIVE|ADVERB|PHRASE|OTHER>",
      "definition": "<one-sentence definition>",
      "context": "<short quote from the text containing the term>",
      "relevance_score": <0-100>,
      "confidence_score": <0-100>,
      "frequency": <occurrences in this text>,
      "is_compound": <true|false>,
      "is_abbreviation": <true|false>,
      "variants": ["<surface variant>", ...],
      "related_terms": ["<related term>", ...]
    }
  ]
}

Text:
`)
	b.WriteString(req.Text)

	return b.String()
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
