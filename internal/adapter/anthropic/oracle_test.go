package anthropic

import (
	"strings"
	"testing"

	"github.com/termscout/termscout/internal/extract"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"terms": []}`, `{"terms": []}`, false},
		{"surrounded by prose", "Here you go:\n{\"terms\": []}\nDone.", `{"terms": []}`, false},
		{"no object", "sorry, nothing here", "", true},
		{"reversed braces", "} nope {", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := extract.OracleRequest{
		Text:       "Sample document body.",
		SourceLang: "en",
		TargetLang: "de",
		DomainPath: "Legal/Contracts",
		ChunkHint:  "Chunk 2 of 5",
	}

	prompt := buildPrompt(req)

	for _, want := range []string{"en", "de", "Legal/Contracts", "Chunk 2 of 5", "Sample document body."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_SingleChunkHasNoHint(t *testing.T) {
	prompt := buildPrompt(extract.OracleRequest{Text: "body", SourceLang: "en", TargetLang: "de"})

	if strings.Contains(prompt, "larger document") {
		t.Error("single-chunk prompt must not mention chunking")
	}
}

func TestBuildPrompt_MonolingualRunRequestsNoTranslation(t *testing.T) {
	prompt := buildPrompt(extract.OracleRequest{Text: "body", SourceLang: "de", TargetLang: "de"})

	if strings.Contains(prompt, "Provide translations") {
		t.Error("source-source run must not ask for translations")
	}
}
