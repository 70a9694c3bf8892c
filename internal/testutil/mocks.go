package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/googleapis/gax-go/v2"
)

// MockObjectStore mocks Cloud Storage bucket listing and uploads
type MockObjectStore struct {
	BucketNames []string
	BucketsErr  error
	PutErr      error
	Objects     map[string]MockObject
	Calls       []string
}

// MockObject is an uploaded object
type MockObject struct {
	ContentType string
	Data        []byte
}

// Buckets mocks bucket listing
func (m *MockObjectStore) Buckets(ctx context.Context) ([]string, error) {
	m.Calls = append(m.Calls, "BUCKETS")
	if m.BucketsErr != nil {
		return nil, m.BucketsErr
	}
	return m.BucketNames, nil
}

// Put mocks an object upload
func (m *MockObjectStore) Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error {
	m.Calls = append(m.Calls, fmt.Sprintf("PUT %s/%s (%s)", bucket, key, contentType))
	if m.PutErr != nil {
		return m.PutErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if m.Objects == nil {
		m.Objects = make(map[string]MockObject)
	}
	m.Objects[bucket+"/"+key] = MockObject{ContentType: contentType, Data: data}
	return nil
}

// MockGlossaryService mocks the Cloud Translation glossary API. Created
// glossaries are kept and returned by List.
type MockGlossaryService struct {
	Glossaries []*translatepb.Glossary
	CreateErr  error
	ListErr    error
	DeleteErr  error
	Calls      []string
}

// Create mocks glossary creation
func (m *MockGlossaryService) Create(ctx context.Context, parent string, glossary *translatepb.Glossary) (*translatepb.Glossary, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("CREATE %s", glossary.GetName()))
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Glossaries = append(m.Glossaries, glossary)
	return glossary, nil
}

// List mocks glossary listing
func (m *MockGlossaryService) List(ctx context.Context, parent string) ([]*translatepb.Glossary, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("LIST %s", parent))
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Glossaries, nil
}

// Delete mocks glossary deletion
func (m *MockGlossaryService) Delete(ctx context.Context, name string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("DELETE %s", name))
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	kept := m.Glossaries[:0]
	for _, g := range m.Glossaries {
		if g.GetName() != name {
			kept = append(kept, g)
		}
	}
	m.Glossaries = kept
	return nil
}

// MockTextTranslator mocks the Cloud Translation TranslateText call
type MockTextTranslator struct {
	Response *translatepb.TranslateTextResponse
	Err      error
	Requests []*translatepb.TranslateTextRequest
}

// TranslateText records the request and returns the canned response. Without
// one it echoes the contents upper-cased.
func (m *MockTextTranslator) TranslateText(ctx context.Context, req *translatepb.TranslateTextRequest, opts ...gax.CallOption) (*translatepb.TranslateTextResponse, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response != nil {
		return m.Response, nil
	}

	resp := &translatepb.TranslateTextResponse{}
	for _, c := range req.GetContents() {
		resp.Translations = append(resp.Translations, &translatepb.Translation{TranslatedText: strings.ToUpper(c)})
	}
	return resp, nil
}

// MockFileSystem mocks file system operations
type MockFileSystem struct {
	Files  map[string][]byte
	Errors map[string]error
	Calls  []string
}

// ReadFile mocks reading a file
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("READ %s", path))

	if err, ok := m.Errors[path]; ok {
		return nil, err
	}

	if data, ok := m.Files[path]; ok {
		return data, nil
	}

	return nil, fmt.Errorf("file not found: %s", path)
}

// WriteFile mocks writing a file
func (m *MockFileSystem) WriteFile(path string, data []byte) error {
	m.Calls = append(m.Calls, fmt.Sprintf("WRITE %s (%d bytes)", path, len(data)))

	if err, ok := m.Errors[path]; ok {
		return err
	}

	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	m.Files[path] = data
	return nil
}

// Exists mocks checking if a file exists
func (m *MockFileSystem) Exists(path string) bool {
	m.Calls = append(m.Calls, fmt.Sprintf("EXISTS %s", path))
	_, exists := m.Files[path]
	return exists
}

// MockClipboard records copied text
type MockClipboard struct {
	Text string
	Err  error
}

// WriteAll mocks copying to the clipboard
func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
