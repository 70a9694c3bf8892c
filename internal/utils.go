package internal

import (
	"path/filepath"
	"regexp"
	"strings"
)

var glossaryNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidGlossaryName reports whether name is usable as a glossary resource ID.
func ValidGlossaryName(name string) bool {
	return glossaryNamePattern.MatchString(name)
}

// SanitizeFilename creates a glossary-safe name from a file name.
// The extension is dropped and every other disallowed rune becomes '_'.
func SanitizeFilename(s string) string {
	base := strings.TrimSuffix(filepath.Base(s), filepath.Ext(s))
	var b strings.Builder
	for _, r := range base {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// TranslatedFilePath returns the path a translated copy of inputPath is
// written to: the target language is inserted before the extension,
// e.g. notes.md -> notes-de.md.
func TranslatedFilePath(inputPath, targetLang string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "-" + targetLang + ext
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
