package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal implements UI on an interactive terminal.
type Terminal struct {
	in  io.Reader
	out io.Writer
	st  styles
}

// NewTerminal creates a terminal UI reading keys from in and rendering to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, st: defaultStyles()}
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

// Select shows a menu and returns the chosen option's value.
func (t *Terminal) Select(ctx context.Context, message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("select prompt needs at least one option")
	}

	final, err := t.run(ctx, selectModel{message: message, options: options, st: t.st})
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.options[m.cursor].Value, nil
}

// Text asks for a line of input.
func (t *Terminal) Text(ctx context.Context, q TextQuestion) (string, error) {
	final, err := t.run(ctx, textModel{q: q, st: t.st})
	if err != nil {
		return "", err
	}

	m := final.(textModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.answer, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	final, err := t.run(ctx, confirmModel{message: message, value: initial, st: t.st})
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	if m.cancelled || !m.done {
		return false, ErrCancelled
	}
	return m.value, nil
}

func (t *Terminal) Intro(title string) {
	fmt.Fprintln(t.out, t.st.title.Render(title))
}

func (t *Terminal) Outro(message string) {
	fmt.Fprintln(t.out, t.st.muted.Render(message))
}

func (t *Terminal) Note(message string) {
	fmt.Fprintln(t.out, t.st.note.Render(strings.TrimRight(message, "\n")))
}

func (t *Terminal) Info(message string) {
	fmt.Fprintln(t.out, t.st.info.Render("ℹ "+message))
}

func (t *Terminal) Success(message string) {
	fmt.Fprintln(t.out, t.st.success.Render("✔ "+message))
}

func (t *Terminal) Warn(message string) {
	fmt.Fprintln(t.out, t.st.warn.Render("▲ "+message))
}

func (t *Terminal) Error(message string) {
	fmt.Fprintln(t.out, t.st.err.Render("✖ "+message))
}
