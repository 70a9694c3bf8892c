package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned by a prompt the user dismissed (Esc, Ctrl+C).
var ErrCancelled = errors.New("prompt cancelled")

// Option is a selectable menu entry.
type Option struct {
	Value string
	Label string
}

// TextQuestion describes a free text prompt. Default is used when the user
// submits an empty answer; Validate may reject an answer with a message.
type TextQuestion struct {
	Message     string
	Placeholder string
	Default     string
	Validate    func(string) error
}

// Prompter asks the user for input.
type Prompter interface {
	Select(ctx context.Context, message string, options []Option) (string, error)
	Text(ctx context.Context, q TextQuestion) (string, error)
	Confirm(ctx context.Context, message string, initial bool) (bool, error)
}

// Reporter shows status lines to the user.
type Reporter interface {
	Intro(title string)
	Outro(message string)
	Note(message string)
	Info(message string)
	Success(message string)
	Warn(message string)
	Error(message string)
}

// UI is the full prompt collaborator.
type UI interface {
	Prompter
	Reporter
}
