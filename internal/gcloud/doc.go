// Package gcloud wraps the Google Cloud Storage and Cloud Translation v3
// clients behind the narrow interfaces the glossary and translation
// packages consume. All clients authenticate with the loaded service
// account key.
package gcloud
