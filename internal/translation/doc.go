// Package translation builds Cloud Translation requests from the user's
// settings, applies the active glossary and normalizes responses and
// errors into a fixed set of user-facing failures.
package translation
