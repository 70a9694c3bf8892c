// Package settings persists the user's translation preferences (default
// language pair, active glossary, glossary case sensitivity) in a local
// JSON file and validates language codes.
package settings
