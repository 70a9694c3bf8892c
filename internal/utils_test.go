package internal

import "testing"

func TestValidGlossaryName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"letters", "medical", true},
		{"mixed", "Medical_terms-2024", true},
		{"empty", "", false},
		{"space", "my glossary", false},
		{"dot", "terms.v2", false},
		{"slash", "projects/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidGlossaryName(tt.input); got != tt.want {
				t.Errorf("ValidGlossaryName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"terms.csv", "terms"},
		{"/tmp/medical terms.tsv", "medical_terms"},
		{"en-de_v2.csv", "en-de_v2"},
		{"glossár.csv", "gloss_r"},
	}

	for _, tt := range tests {
		got := SanitizeFilename(tt.input)
		if got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if !ValidGlossaryName(got) {
			t.Errorf("SanitizeFilename(%q) produced invalid glossary name %q", tt.input, got)
		}
	}
}

func TestTranslatedFilePath(t *testing.T) {
	tests := []struct {
		input string
		lang  string
		want  string
	}{
		{"notes.md", "de", "notes-de.md"},
		{"/home/u/docs/readme.txt", "pt-BR", "/home/u/docs/readme-pt-BR.txt"},
		{"archive.v1.txt", "ru", "archive.v1-ru.txt"},
	}

	for _, tt := range tests {
		if got := TranslatedFilePath(tt.input, tt.lang); got != tt.want {
			t.Errorf("TranslatedFilePath(%q, %q) = %q, want %q", tt.input, tt.lang, got, tt.want)
		}
	}
}
