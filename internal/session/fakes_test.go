package session

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/snonux/gtai/internal/glossary"
	"codeberg.org/snonux/gtai/internal/prompt"
	"codeberg.org/snonux/gtai/internal/settings"
	"codeberg.org/snonux/gtai/internal/translation"
)

// answer is one scripted reply. A non-nil err is returned instead of a value.
type answer struct {
	value   string
	confirm bool
	err     error
}

func pick(value string) answer { return answer{value: value} }
func say(value string) answer { return answer{value: value} }
func yes() answer { return answer{confirm: true} }
func no() answer { return answer{confirm: false} }
func cancel() answer { return answer{err: prompt.ErrCancelled} }

// scriptedUI replays answers in order. Once they run out every prompt is
// cancelled, which unwinds the session back out of Run.
type scriptedUI struct {
	t       *testing.T
	answers []answer

	selects   [][]prompt.Option
	notes     []string
	infos     []string
	successes []string
	warnings  []string
	errors    []string
	outro     string
}

func newScriptedUI(t *testing.T, answers ...answer) *scriptedUI {
	return &scriptedUI{t: t, answers: answers}
}

func (u *scriptedUI) next() (answer, bool) {
	if len(u.answers) == 0 {
		return answer{}, false
	}
	a := u.answers[0]
	u.answers = u.answers[1:]
	return a, true
}

func (u *scriptedUI) Select(_ context.Context, message string, options []prompt.Option) (string, error) {
	u.selects = append(u.selects, options)
	a, ok := u.next()
	if !ok {
		return "", prompt.ErrCancelled
	}
	if a.err != nil {
		return "", a.err
	}
	for _, o := range options {
		if o.Value == a.value {
			return a.value, nil
		}
	}
	u.t.Fatalf("select %q: no option %q in %v", message, a.value, options)
	return "", nil
}

func (u *scriptedUI) Text(_ context.Context, q prompt.TextQuestion) (string, error) {
	a, ok := u.next()
	if !ok {
		return "", prompt.ErrCancelled
	}
	if a.err != nil {
		return "", a.err
	}
	value := a.value
	if value == "" {
		value = q.Default
	}
	if q.Validate != nil {
		if err := q.Validate(value); err != nil {
			u.t.Fatalf("text %q: answer %q rejected: %v", q.Message, value, err)
		}
	}
	return value, nil
}

func (u *scriptedUI) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	a, ok := u.next()
	if !ok {
		return false, prompt.ErrCancelled
	}
	return a.confirm, a.err
}

func (u *scriptedUI) Intro(string) {}
func (u *scriptedUI) Outro(m string) { u.outro = m }
func (u *scriptedUI) Note(m string) { u.notes = append(u.notes, m) }
func (u *scriptedUI) Info(m string) { u.infos = append(u.infos, m) }
func (u *scriptedUI) Success(m string) { u.successes = append(u.successes, m) }
func (u *scriptedUI) Warn(m string) { u.warnings = append(u.warnings, m) }
func (u *scriptedUI) Error(m string) { u.errors = append(u.errors, m) }

func (u *scriptedUI) offered(value string) bool {
	for _, options := range u.selects {
		for _, o := range options {
			if o.Value == value {
				return true
			}
		}
	}
	return false
}

func contains(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// memStore keeps settings in memory.
type memStore struct {
	current settings.Settings
	exists  bool
	valid   bool
	saved   []settings.Settings
	saveErr error
}

func storeWith(s settings.Settings) *memStore {
	return &memStore{current: s, exists: true, valid: true}
}

func (m *memStore) Exists() bool { return m.exists }
func (m *memStore) Load() (settings.Settings, bool) { return m.current, m.valid }
func (m *memStore) Path() string { return "settings.json" }
func (m *memStore) Save(s settings.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.current, m.exists, m.valid = s, true, true
	m.saved = append(m.saved, s)
	return nil
}

type upload struct {
	path, bucket, name, source, target string
}

type fakeRegistry struct {
	glossaries []glossary.Info
	buckets    []string
	bucketsErr error
	listErr    error
	uploadErr  error
	deleteErr  error

	uploads []upload
	deleted []string
}

func (f *fakeRegistry) ListBuckets(context.Context) ([]string, error) {
	return f.buckets, f.bucketsErr
}

func (f *fakeRegistry) UploadAndCreate(_ context.Context, localPath, bucket, name, source, target string) (string, error) {
	f.uploads = append(f.uploads, upload{localPath, bucket, name, source, target})
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return testParent + "/glossaries/" + name, nil
}

func (f *fakeRegistry) List(context.Context) ([]glossary.Info, error) {
	return f.glossaries, f.listErr
}

func (f *fakeRegistry) Delete(_ context.Context, name string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, name)
	kept := f.glossaries[:0]
	for _, g := range f.glossaries {
		if g.Name != name {
			kept = append(kept, g)
		}
	}
	f.glossaries = kept
	return nil
}

// fakeTranslator upper-cases the request text.
type fakeTranslator struct {
	err      error
	requests []translation.Request
}

func (f *fakeTranslator) Translate(_ context.Context, req translation.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return strings.ToUpper(req.Text), nil
}
