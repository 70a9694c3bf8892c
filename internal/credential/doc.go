// Package credential loads and validates the Google Cloud service account
// key that every remote call authenticates with.
package credential
