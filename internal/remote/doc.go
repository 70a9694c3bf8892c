// Package remote turns the differently shaped errors returned by the
// Google Cloud client libraries (gRPC status, googleapi HTTP errors,
// gax API errors, plain errors) into one readable message.
package remote
