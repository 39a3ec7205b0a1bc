package config

// Config is the root application configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Derivative DerivativeConfig `yaml:"derivative"`
	Oracle     OracleConfig     `yaml:"oracle"`
	Log        LogConfig        `yaml:"log"`
}

// ExtractionConfig holds chunking and filtering settings.
type ExtractionConfig struct {
	SourceLanguage     string  `yaml:"source_language"     env:"EXTRACT_SOURCE_LANG"         env-default:"en"`
	TargetLanguage     string  `yaml:"target_language"     env:"EXTRACT_TARGET_LANG"`
	DomainPath         string  `yaml:"domain_path"         env:"EXTRACT_DOMAIN_PATH"`
	ChunkSize          int     `yaml:"chunk_size"          env:"EXTRACT_CHUNK_SIZE"          env-default:"2000"`
	RelevanceThreshold float64 `yaml:"relevance_threshold" env:"EXTRACT_RELEVANCE_THRESHOLD" env-default:"70"`
}

// LookupConfig holds bilingual reference lookup settings.
type LookupConfig struct {
	Enabled        bool    `yaml:"enabled"         env:"LOOKUP_ENABLED"         env-default:"false"`
	ReferencePath  string  `yaml:"reference_path"  env:"LOOKUP_REFERENCE_PATH"`
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" env:"LOOKUP_FUZZY_THRESHOLD" env-default:"70"`
}

// DerivativeConfig holds derivative discovery settings.
type DerivativeConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"DERIVATIVE_ENABLED"        env-default:"false"`
	Modes         string `yaml:"modes"          env:"DERIVATIVE_MODES"          env-default:"prefix,suffix"`
	MinLength     int    `yaml:"min_length"     env:"DERIVATIVE_MIN_LENGTH"     env-default:"3"`
	MaxPerTerm    int    `yaml:"max_per_term"   env:"DERIVATIVE_MAX_PER_TERM"   env-default:"20"`
	CaseSensitive bool   `yaml:"case_sensitive" env:"DERIVATIVE_CASE_SENSITIVE" env-default:"false"`
}

// OracleConfig holds settings for the Anthropic-backed term oracle.
type OracleConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model"      env:"ORACLE_MODEL"      env-default:"claude-3-5-haiku-20241022"`
	MaxTokens int    `yaml:"max_tokens" env:"ORACLE_MAX_TOKENS" env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
