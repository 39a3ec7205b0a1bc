package domain

import "testing"

func TestNormalizeLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"two letter passthrough", "en", "en"},
		{"uppercase", "DE", "de"},
		{"region qualified", "en-US", "en"},
		{"region qualified three letter base", "spa-MX", "es"},
		{"three letter known", "eng", "en"},
		{"three letter known russian", "rus", "ru"},
		{"three letter unknown", "xyz", "en"},
		{"empty", "", "en"},
		{"whitespace", "  fr  ", "fr"},
		{"unrecognized long tag", "gibberish", "en"},
		{"single letter", "x", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLanguageCode(tt.code); got != tt.want {
				t.Errorf("NormalizeLanguageCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsSingleWord(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"machine", true},
		{"machine learning", false},
		{"well-known", false},
		{"snake_case", false},
		{"", false},
		{"   ", false},
		{"Rückgewinnung", true},
	}

	for _, tt := range tests {
		if got := IsSingleWord(tt.term); got != tt.want {
			t.Errorf("IsSingleWord(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  a\t\tb\n\nc  "); got != "a b c" {
		t.Errorf("CleanText: got %q, want %q", got, "a b c")
	}
	if got := CleanText(""); got != "" {
		t.Errorf("CleanText empty: got %q", got)
	}
}

func TestParseDomainPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"three levels", "Medical/Healthcare/Cardiology", []string{"Medical", "Healthcare", "Cardiology"}},
		{"trimmed levels", " Legal / Contracts ", []string{"Legal", "Contracts"}},
		{"empty", "", []string{"General"}},
		{"only slashes", "///", []string{"General"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDomainPath(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseDomainPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("level %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
