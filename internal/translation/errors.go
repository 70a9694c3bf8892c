package translation

import (
	"errors"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc/codes"

	"codeberg.org/snonux/gtai/internal/remote"
)

var (
	// ErrEmptyText is returned when the text is empty after trimming.
	ErrEmptyText = errors.New("text to translate cannot be empty")
	// ErrMissingLanguage is returned when a language code is empty.
	ErrMissingLanguage = errors.New("source and target languages must be specified")
	// ErrSameLanguage is returned when source and target language are equal.
	ErrSameLanguage = errors.New("source and target languages cannot be the same")
	// ErrEmptyTranslation is returned when the response carries no text.
	ErrEmptyTranslation = errors.New("no translation received from Google Translate API")

	// ErrInvalidArgument is the user-facing form of INVALID_ARGUMENT.
	ErrInvalidArgument = errors.New("invalid language code or text format, please check your input")
	// ErrPermissionDenied is the user-facing form of PERMISSION_DENIED.
	ErrPermissionDenied = errors.New("permission denied, please check your service account permissions")
	// ErrQuotaExceeded is the user-facing form of quota failures.
	ErrQuotaExceeded = errors.New("translation quota exceeded, please check your Google Cloud billing")
	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("translation service unavailable after repeated failures, try again shortly")
)

// ProviderError carries a remote failure that matched no known case. Its
// message is the original one.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// mapError rewrites recognized remote failures to user-facing errors.
func mapError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}

	code := remote.Code(err)
	text := err.Error()

	switch {
	case code == codes.InvalidArgument || strings.Contains(text, "INVALID_ARGUMENT"):
		return ErrInvalidArgument
	case code == codes.PermissionDenied || strings.Contains(text, "PERMISSION_DENIED"):
		return ErrPermissionDenied
	case code == codes.ResourceExhausted || strings.Contains(text, "QUOTA_EXCEEDED") || strings.Contains(text, "RESOURCE_EXHAUSTED"):
		return ErrQuotaExceeded
	}

	return &ProviderError{Err: err}
}

// isCallerError reports failures caused by the request itself; they do not
// count against the circuit breaker.
func isCallerError(err error) bool {
	return remote.Code(err) == codes.InvalidArgument || strings.Contains(err.Error(), "INVALID_ARGUMENT")
}
