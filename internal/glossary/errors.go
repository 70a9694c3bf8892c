package glossary

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/gtai/internal/remote"
)

var (
	// ErrFileNotFound is returned when the local glossary file is missing.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnsupportedFormat is returned for files other than .csv and .tsv.
	ErrUnsupportedFormat = errors.New("only CSV and TSV files are supported for glossaries")
	// ErrStorage marks Cloud Storage failures (bucket listing, upload).
	ErrStorage = errors.New("storage error")
	// ErrRegistration marks glossary creation failures.
	ErrRegistration = errors.New("glossary registration error")
	// ErrListing marks glossary listing failures.
	ErrListing = errors.New("glossary listing error")
	// ErrDeletion marks glossary deletion failures.
	ErrDeletion = errors.New("glossary deletion error")
)

// Error is a remote glossary or storage failure. Kind is one of the
// package sentinels and matches with errors.Is.
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Msg)
}

// Is matches the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying client error.
func (e *Error) Unwrap() error {
	return e.Err
}

func remoteError(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Msg: remote.Message(err), Err: err}
}
