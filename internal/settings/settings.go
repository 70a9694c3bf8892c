package settings

import (
	"fmt"
	"path"
	"slices"
)

// Settings holds the persisted user preferences. It is treated as a value:
// every change produces a new Settings through one of the With*/On*
// transitions.
type Settings struct {
	DefaultSourceLanguage string `json:"defaultSourceLanguage"`
	DefaultTargetLanguage string `json:"defaultTargetLanguage"`
	ActiveGlossary        string `json:"activeGlossary,omitempty"`
	GlossaryIgnoreCase    *bool  `json:"glossaryIgnoreCase,omitempty"`
}

// New returns settings for the given language pair with no glossary.
func New(source, target string) Settings {
	return Settings{DefaultSourceLanguage: source, DefaultTargetLanguage: target}
}

// Validate checks both language codes against the language-code grammar.
func (s Settings) Validate() error {
	if !ValidLanguageCode(s.DefaultSourceLanguage) {
		return fmt.Errorf("%w: invalid source language code %q", ErrInvalid, s.DefaultSourceLanguage)
	}
	if !ValidLanguageCode(s.DefaultTargetLanguage) {
		return fmt.Errorf("%w: invalid target language code %q", ErrInvalid, s.DefaultTargetLanguage)
	}
	return nil
}

// IgnoreCase reports whether glossary matching ignores case. Defaults to true.
func (s Settings) IgnoreCase() bool {
	if s.GlossaryIgnoreCase == nil {
		return true
	}
	return *s.GlossaryIgnoreCase
}

// HasActiveGlossary reports whether a glossary is selected.
func (s Settings) HasActiveGlossary() bool {
	return s.ActiveGlossary != ""
}

// ActiveGlossaryShortName returns the last path segment of the active
// glossary resource name, or "None".
func (s Settings) ActiveGlossaryShortName() string {
	if s.ActiveGlossary == "" {
		return "None"
	}
	return path.Base(s.ActiveGlossary)
}

// WithLanguages changes the language pair. The active glossary is bound to
// a language pair, so it is cleared; the case sensitivity flag is kept.
func (s Settings) WithLanguages(source, target string) Settings {
	s.DefaultSourceLanguage = source
	s.DefaultTargetLanguage = target
	s.ActiveGlossary = ""
	return s
}

// WithActiveGlossary selects name as the active glossary; "" disables it.
func (s Settings) WithActiveGlossary(name string) Settings {
	s.ActiveGlossary = name
	return s
}

// WithIgnoreCase sets the glossary case sensitivity flag.
func (s Settings) WithIgnoreCase(ignore bool) Settings {
	s.GlossaryIgnoreCase = &ignore
	return s
}

// OnGlossaryListEmpty repairs a stale reference after a listing showed no
// glossaries. The bool reports whether anything changed.
func (s Settings) OnGlossaryListEmpty() (Settings, bool) {
	if s.ActiveGlossary == "" {
		return s, false
	}
	s.ActiveGlossary = ""
	return s, true
}

// OnGlossaryDeleted clears the active glossary if it is the deleted one.
// The bool reports whether anything changed.
func (s Settings) OnGlossaryDeleted(name string) (Settings, bool) {
	if s.ActiveGlossary == "" || s.ActiveGlossary != name {
		return s, false
	}
	s.ActiveGlossary = ""
	return s, true
}

// OnGlossariesListed clears the active glossary when a listing no longer
// contains it. The bool reports whether anything changed.
func (s Settings) OnGlossariesListed(names []string) (Settings, bool) {
	if len(names) == 0 {
		return s.OnGlossaryListEmpty()
	}
	if s.ActiveGlossary == "" || slices.Contains(names, s.ActiveGlossary) {
		return s, false
	}
	s.ActiveGlossary = ""
	return s, true
}
