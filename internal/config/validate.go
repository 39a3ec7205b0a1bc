package config

import "strings"

// Normalize clamps out-of-range values to their nearest valid value and
// replaces unusable settings with documented defaults. Bad configuration
// degrades gracefully instead of aborting a run.
func (c *Config) Normalize() {
	if c.Extraction.ChunkSize <= 0 {
		c.Extraction.ChunkSize = 2000
	}
	c.Extraction.RelevanceThreshold = clampScore(c.Extraction.RelevanceThreshold)
	c.Lookup.FuzzyThreshold = clampScore(c.Lookup.FuzzyThreshold)

	if c.Derivative.MinLength <= 0 {
		c.Derivative.MinLength = 3
	}
	if c.Derivative.MaxPerTerm <= 0 {
		c.Derivative.MaxPerTerm = 20
	}
	if strings.TrimSpace(c.Derivative.Modes) == "" {
		c.Derivative.Modes = "prefix,suffix"
	}
	if c.Oracle.MaxTokens <= 0 {
		c.Oracle.MaxTokens = 4096
	}
}

// clampScore forces a percentage into [0,100]. A threshold of 0 disables the
// relevance filter, so clamping negatives to 0 keeps "off" behavior intact.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
