package domain

import (
	"regexp"
	"strings"
)

// threeLetterCodes maps ISO 639-2/3 codes to their 2-letter base.
var threeLetterCodes = map[string]string{
	"eng": "en", "deu": "de", "fra": "fr", "spa": "es", "ita": "it",
	"por": "pt", "rus": "ru", "jpn": "ja", "kor": "ko", "zho": "zh",
	"ara": "ar", "hin": "hi", "ben": "bn", "tur": "tr", "ron": "ro",
	"bul": "bg", "hrv": "hr", "ces": "cs", "dan": "da", "nld": "nl",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeLanguageCode reduces a language tag to its 2-letter base form:
// "en-US" → "en", "eng" → "en". Empty or unrecognized values default to "en".
func NormalizeLanguageCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "en"
	}
	if len(code) == 2 {
		return code
	}
	if base, _, found := strings.Cut(code, "-"); found {
		return NormalizeLanguageCode(base)
	}
	if len(code) == 3 {
		if two, ok := threeLetterCodes[code]; ok {
			return two
		}
	}
	return "en"
}

// IsSingleWord reports whether a term is a single word: non-empty and free of
// internal whitespace, hyphens, and underscores. Only such terms are eligible
// for derivative discovery.
func IsSingleWord(term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	return !strings.ContainsAny(term, " -_")
}

// CleanText collapses all whitespace runs to single spaces and trims the ends.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// ParseDomainPath splits a "Medical/Healthcare/Cardiology" style hint into
// hierarchy levels. Empty or blank input yields ["General"].
func ParseDomainPath(path string) []string {
	var levels []string
	for _, level := range strings.Split(path, "/") {
		if level = strings.TrimSpace(level); level != "" {
			levels = append(levels, level)
		}
	}
	if len(levels) == 0 {
		return []string{"General"}
	}
	return levels
}
