package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func isCancelKey(key string) bool {
	return key == "esc" || key == "ctrl+c"
}

// selectModel renders a vertical menu with a cursor.
type selectModel struct {
	message   string
	options   []Option
	cursor    int
	done      bool
	cancelled bool
	st        styles
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); {
	case isCancelKey(s):
		m.cancelled = true
		return m, tea.Quit
	case s == "up" || s == "k":
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case s == "down" || s == "j" || s == "tab":
		m.cursor = (m.cursor + 1) % len(m.options)
	case s == "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.st.question.Render(m.message) + "\n")

	if m.done {
		b.WriteString(m.st.muted.Render("  "+m.options[m.cursor].Label) + "\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString(m.st.muted.Render("  cancelled") + "\n")
		return b.String()
	}

	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(m.st.cursor.Render("● "+opt.Label) + "\n")
		} else {
			b.WriteString("○ " + opt.Label + "\n")
		}
	}
	return b.String()
}

// textModel is a single-line input with validation.
type textModel struct {
	q         TextQuestion
	value     []rune
	problem   string
	answer    string
	done      bool
	cancelled bool
	st        styles
}

func (m textModel) Init() tea.Cmd { return nil }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		answer := string(m.value)
		if answer == "" {
			answer = m.q.Default
		}
		if m.q.Validate != nil {
			if err := m.q.Validate(answer); err != nil {
				m.problem = err.Error()
				return m, nil
			}
		}
		m.answer = answer
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}
	m.problem = ""
	return m, nil
}

func (m textModel) View() string {
	var b strings.Builder
	b.WriteString(m.st.question.Render(m.q.Message) + "\n")

	switch {
	case m.done:
		b.WriteString(m.st.muted.Render("  "+m.answer) + "\n")
	case m.cancelled:
		b.WriteString(m.st.muted.Render("  cancelled") + "\n")
	default:
		if len(m.value) == 0 && m.q.Placeholder != "" {
			b.WriteString(m.st.cursor.Render("› ") + m.st.muted.Render(m.q.Placeholder) + "\n")
		} else {
			b.WriteString(m.st.cursor.Render("› ") + string(m.value) + "█\n")
		}
		if m.problem != "" {
			b.WriteString(m.st.warn.Render("  "+m.problem) + "\n")
		}
	}
	return b.String()
}

// confirmModel is a yes/no toggle.
type confirmModel struct {
	message   string
	value     bool
	done      bool
	cancelled bool
	st        styles
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); {
	case isCancelKey(s):
		m.cancelled = true
		return m, tea.Quit
	case s == "y" || s == "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case s == "n" || s == "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case s == "left" || s == "right" || s == "tab" || s == "h" || s == "l":
		m.value = !m.value
	case s == "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	yes, no := "○ Yes", "○ No"
	if m.value {
		yes = m.st.cursor.Render("● Yes")
	} else {
		no = m.st.cursor.Render("● No")
	}

	line := yes + " / " + no
	switch {
	case m.done && m.value:
		line = m.st.muted.Render("Yes")
	case m.done:
		line = m.st.muted.Render("No")
	case m.cancelled:
		line = m.st.muted.Render("cancelled")
	}
	return m.st.question.Render(m.message) + "\n  " + line + "\n"
}
