package gcloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"
	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"codeberg.org/snonux/gtai/internal/credential"
)

// DefaultLocation is the Cloud Translation region glossaries live in.
const DefaultLocation = "us-central1"

// Clients bundles the storage and translation clients for one project.
type Clients struct {
	projectID   string
	location    string
	storage     *storage.Client
	translation *translate.TranslationClient
	logger      *slog.Logger
}

// Dial creates the Google Cloud clients for cred. Location defaults to
// DefaultLocation.
func Dial(ctx context.Context, cred *credential.Credential, location string, logger *slog.Logger) (*Clients, error) {
	if location == "" {
		location = DefaultLocation
	}
	if logger == nil {
		logger = slog.Default()
	}

	opt := option.WithCredentialsJSON(cred.JSON())

	storageClient, err := storage.NewClient(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	translationClient, err := translate.NewTranslationClient(ctx, opt)
	if err != nil {
		storageClient.Close()
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}

	return &Clients{
		projectID:   cred.ProjectID,
		location:    location,
		storage:     storageClient,
		translation: translationClient,
		logger:      logger,
	}, nil
}

// Close releases both clients.
func (c *Clients) Close() error {
	return errors.Join(c.storage.Close(), c.translation.Close())
}

// Parent returns the location-scoped resource namespace,
// projects/<project>/locations/<location>.
func (c *Clients) Parent() string {
	return Parent(c.projectID, c.location)
}

// Parent builds the location-scoped resource namespace for a project.
func Parent(projectID, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", projectID, location)
}

// Storage returns the object store adapter.
func (c *Clients) Storage() *ObjectStore {
	return &ObjectStore{client: c.storage, projectID: c.projectID, logger: c.logger}
}

// Glossaries returns the glossary service adapter.
func (c *Clients) Glossaries() *GlossaryService {
	return &GlossaryService{client: c.translation, logger: c.logger}
}

// Translation returns the raw translation client, which satisfies
// translation.TextTranslator.
func (c *Clients) Translation() *translate.TranslationClient {
	return c.translation
}

// ObjectStore lists buckets and uploads objects to Cloud Storage.
type ObjectStore struct {
	client    *storage.Client
	projectID string
	logger    *slog.Logger
}

// Buckets lists the names of all buckets in the project.
func (s *ObjectStore) Buckets(ctx context.Context) ([]string, error) {
	start := time.Now()
	var names []string

	it := s.client.Buckets(ctx, s.projectID)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}

	s.logger.Debug("listed buckets", "project", s.projectID, "count", len(names), "elapsed", time.Since(start))
	return names, nil
}

// Put writes r to bucket/key with the given content type.
func (s *ObjectStore) Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error {
	start := time.Now()

	// Cancelling the writer's context aborts the upload; Close would commit
	// the partial object.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(bucket).Object(key).NewWriter(wctx)
	w.ContentType = contentType

	written, err := io.Copy(w, r)
	if err != nil {
		cancel()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	s.logger.Debug("uploaded object", "bucket", bucket, "key", key, "bytes", written, "elapsed", time.Since(start))
	return nil
}

// GlossaryService manages glossary resources in Cloud Translation. Create
// and Delete wait for the long-running operation to finish.
type GlossaryService struct {
	client glossaryClient
	logger *slog.Logger
}

// glossaryClient is the subset of *translate.TranslationClient used here.
type glossaryClient interface {
	CreateGlossary(ctx context.Context, req *translatepb.CreateGlossaryRequest, opts ...gax.CallOption) (*translate.CreateGlossaryOperation, error)
	ListGlossaries(ctx context.Context, req *translatepb.ListGlossariesRequest, opts ...gax.CallOption) *translate.GlossaryIterator
	DeleteGlossary(ctx context.Context, req *translatepb.DeleteGlossaryRequest, opts ...gax.CallOption) (*translate.DeleteGlossaryOperation, error)
}

// Create submits the glossary and blocks until it is ready for use.
func (g *GlossaryService) Create(ctx context.Context, parent string, glossary *translatepb.Glossary) (*translatepb.Glossary, error) {
	start := time.Now()

	op, err := g.client.CreateGlossary(ctx, &translatepb.CreateGlossaryRequest{
		Parent:   parent,
		Glossary: glossary,
	})
	if err != nil {
		return nil, err
	}

	created, err := op.Wait(ctx)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("created glossary", "name", glossary.GetName(), "elapsed", time.Since(start))
	return created, nil
}

// List returns every glossary under parent.
func (g *GlossaryService) List(ctx context.Context, parent string) ([]*translatepb.Glossary, error) {
	var glossaries []*translatepb.Glossary

	it := g.client.ListGlossaries(ctx, &translatepb.ListGlossariesRequest{Parent: parent})
	for {
		glossary, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		glossaries = append(glossaries, glossary)
	}

	g.logger.Debug("listed glossaries", "parent", parent, "count", len(glossaries))
	return glossaries, nil
}

// Delete removes the glossary and blocks until the operation completes.
func (g *GlossaryService) Delete(ctx context.Context, name string) error {
	start := time.Now()

	op, err := g.client.DeleteGlossary(ctx, &translatepb.DeleteGlossaryRequest{Name: name})
	if err != nil {
		return err
	}
	if _, err := op.Wait(ctx); err != nil {
		return err
	}

	g.logger.Debug("deleted glossary", "name", name, "elapsed", time.Since(start))
	return nil
}
