package settings

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageCodePattern accepts "en" and "en-US" style codes.
var languageCodePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

var englishNames = display.Tags(language.English)

// ValidLanguageCode reports whether code is two lowercase letters,
// optionally followed by a hyphen and two uppercase letters.
func ValidLanguageCode(code string) bool {
	return languageCodePattern.MatchString(code)
}

// LanguageName returns the English display name of code, e.g. "German"
// for "de". It returns code unchanged when no name is known.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := englishNames.Name(tag); name != "" {
		return name
	}
	return code
}
