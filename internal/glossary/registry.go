package glossary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/translate/apiv3/translatepb"
)

// KeyPrefix namespaces every uploaded glossary source object.
const KeyPrefix = "glossaries/"

var contentTypes = map[string]string{
	".csv": "text/csv",
	".tsv": "text/tab-separated-values",
}

// Info is a read-only view of a remote glossary.
type Info struct {
	Name               string
	DisplayName        string
	SourceLanguageCode string
	TargetLanguageCode string
	EntryCount         int
}

// Label renders the glossary for selection menus.
func (i Info) Label() string {
	return fmt.Sprintf("%s (%s → %s, %d entries)", i.DisplayName, i.SourceLanguageCode, i.TargetLanguageCode, i.EntryCount)
}

// ObjectStore is the Cloud Storage surface the registry needs.
type ObjectStore interface {
	Buckets(ctx context.Context) ([]string, error)
	Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error
}

// Service is the Cloud Translation glossary surface the registry needs.
// Create and Delete return only after the remote operation completed.
type Service interface {
	Create(ctx context.Context, parent string, glossary *translatepb.Glossary) (*translatepb.Glossary, error)
	List(ctx context.Context, parent string) ([]*translatepb.Glossary, error)
	Delete(ctx context.Context, name string) error
}

// Registry manages glossaries for one project location.
type Registry struct {
	store   ObjectStore
	service Service
	parent  string
}

// NewRegistry creates a registry for resources under parent
// (projects/<project>/locations/<location>).
func NewRegistry(store ObjectStore, service Service, parent string) *Registry {
	return &Registry{store: store, service: service, parent: parent}
}

// ListBuckets returns the names of the project's storage buckets.
func (r *Registry) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := r.store.Buckets(ctx)
	if err != nil {
		return nil, remoteError(ErrStorage, "list buckets", err)
	}
	return buckets, nil
}

// UploadFile copies a local CSV or TSV glossary into bucket under
// glossaries/<filename> and returns its gs:// URI.
func (r *Registry) UploadFile(ctx context.Context, localPath, bucket string) (string, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
		}
		return "", fmt.Errorf("failed to stat %s: %w", localPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, localPath)
	}

	fileName := filepath.Base(localPath)
	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(fileName))]
	if !ok {
		return "", ErrUnsupportedFormat
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	key := KeyPrefix + fileName
	if err := r.store.Put(ctx, bucket, key, contentType, f); err != nil {
		return "", remoteError(ErrStorage, "upload file to Google Storage", err)
	}

	return fmt.Sprintf("gs://%s/%s", bucket, key), nil
}

// Register creates glossary name for the language pair from the source file
// at inputURI. It blocks until the glossary is usable and returns its full
// resource name.
func (r *Registry) Register(ctx context.Context, name, sourceLang, targetLang, inputURI string) (string, error) {
	glossaryPath := r.parent + "/glossaries/" + name

	_, err := r.service.Create(ctx, r.parent, &translatepb.Glossary{
		Name: glossaryPath,
		Languages: &translatepb.Glossary_LanguagePair{
			LanguagePair: &translatepb.Glossary_LanguageCodePair{
				SourceLanguageCode: sourceLang,
				TargetLanguageCode: targetLang,
			},
		},
		InputConfig: &translatepb.GlossaryInputConfig{
			Source: &translatepb.GlossaryInputConfig_GcsSource{
				GcsSource: &translatepb.GcsSource{InputUri: inputURI},
			},
		},
	})
	if err != nil {
		return "", remoteError(ErrRegistration, "create glossary", err)
	}

	return glossaryPath, nil
}

// List returns all glossaries of the location.
func (r *Registry) List(ctx context.Context) ([]Info, error) {
	glossaries, err := r.service.List(ctx, r.parent)
	if err != nil {
		return nil, remoteError(ErrListing, "list glossaries", err)
	}

	infos := make([]Info, 0, len(glossaries))
	for _, g := range glossaries {
		infos = append(infos, toInfo(g))
	}
	return infos, nil
}

// Delete removes the glossary with the given resource name and blocks until
// the deletion completed.
func (r *Registry) Delete(ctx context.Context, name string) error {
	if err := r.service.Delete(ctx, name); err != nil {
		return remoteError(ErrDeletion, "delete glossary", err)
	}
	return nil
}

// UploadAndCreate uploads the source file and registers the glossary.
// There is no rollback: if registration fails the uploaded object remains.
func (r *Registry) UploadAndCreate(ctx context.Context, localPath, bucket, name, sourceLang, targetLang string) (string, error) {
	uri, err := r.UploadFile(ctx, localPath, bucket)
	if err != nil {
		return "", err
	}
	return r.Register(ctx, name, sourceLang, targetLang, uri)
}

func toInfo(g *translatepb.Glossary) Info {
	name := g.GetName()
	displayName := g.GetDisplayName()
	if displayName == "" && name != "" {
		displayName = path.Base(name)
	}

	return Info{
		Name:               name,
		DisplayName:        displayName,
		SourceLanguageCode: g.GetLanguagePair().GetSourceLanguageCode(),
		TargetLanguageCode: g.GetLanguagePair().GetTargetLanguageCode(),
		EntryCount:         int(g.GetEntryCount()),
	}
}
