// Package session drives the interactive workflow: first-run setup, the
// main menu, settings and glossary management, and text and file
// translation. It keeps the active glossary in settings consistent with
// the glossaries that exist remotely, repairing stale references whenever
// a listing or deletion reveals them.
package session
