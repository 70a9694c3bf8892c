package glossary

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"codeberg.org/snonux/gtai/internal/testutil"
)

const parent = "projects/demo/locations/us-central1"

func newTestRegistry() (*Registry, *testutil.MockObjectStore, *testutil.MockGlossaryService) {
	store := &testutil.MockObjectStore{}
	service := &testutil.MockGlossaryService{}
	return NewRegistry(store, service, parent), store, service
}

func TestListBuckets(t *testing.T) {
	reg, store, _ := newTestRegistry()
	store.BucketNames = []string{"alpha", "beta"}

	buckets, err := reg.ListBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, buckets)
}

func TestListBuckets_Error(t *testing.T) {
	reg, store, _ := newTestRegistry()
	store.BucketsErr = &googleapi.Error{Code: 403, Message: "storage.buckets.list denied"}

	_, err := reg.ListBuckets(context.Background())
	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "failed to list buckets: storage.buckets.list denied", err.Error())

	var gerr *googleapi.Error
	assert.True(t, errors.As(err, &gerr), "client error must stay reachable")
}

func TestUploadFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
	}{
		{"csv", "terms.csv", "text/csv"},
		{"tsv", "terms.tsv", "text/tab-separated-values"},
		{"uppercase csv", "TERMS.CSV", "text/csv"},
		{"uppercase tsv", "Terms.TSV", "text/tab-separated-values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, store, _ := newTestRegistry()
			path := testutil.CreateGlossaryFile(t, tt.file, map[string]string{"hello": "hallo"})

			uri, err := reg.UploadFile(context.Background(), path, "my-bucket")
			require.NoError(t, err)
			assert.Equal(t, "gs://my-bucket/glossaries/"+tt.file, uri)

			obj, ok := store.Objects["my-bucket/glossaries/"+tt.file]
			require.True(t, ok)
			assert.Equal(t, tt.contentType, obj.ContentType)
			assert.NotEmpty(t, obj.Data)
		})
	}
}

func TestUploadFile_UnsupportedFormat(t *testing.T) {
	reg, store, _ := newTestRegistry()
	path := filepath.Join(t.TempDir(), "terms.json")
	testutil.CreateTestFile(t, path, []byte(`{"hello":"hallo"}`))

	_, err := reg.UploadFile(context.Background(), path, "my-bucket")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Empty(t, store.Calls, "no network call expected")
}

func TestUploadFile_NotFound(t *testing.T) {
	reg, store, _ := newTestRegistry()

	_, err := reg.UploadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), "b")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = reg.UploadFile(context.Background(), t.TempDir(), "b")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Empty(t, store.Calls)
}

func TestUploadFile_StorageError(t *testing.T) {
	reg, store, _ := newTestRegistry()
	store.PutErr = &googleapi.Error{Code: 404, Message: "bucket does not exist"}
	path := testutil.CreateGlossaryFile(t, "terms.csv", map[string]string{"a": "b"})

	_, err := reg.UploadFile(context.Background(), path, "nope")
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "bucket does not exist")
}

func TestRegister(t *testing.T) {
	reg, _, service := newTestRegistry()

	name, err := reg.Register(context.Background(), "medical", "en", "de", "gs://b/glossaries/medical.csv")
	require.NoError(t, err)
	assert.Equal(t, parent+"/glossaries/medical", name)

	require.Len(t, service.Glossaries, 1)
	g := service.Glossaries[0]
	assert.Equal(t, name, g.GetName())
	assert.Equal(t, "en", g.GetLanguagePair().GetSourceLanguageCode())
	assert.Equal(t, "de", g.GetLanguagePair().GetTargetLanguageCode())
	assert.Equal(t, "gs://b/glossaries/medical.csv", g.GetInputConfig().GetGcsSource().GetInputUri())
}

func TestRegister_Error(t *testing.T) {
	reg, _, service := newTestRegistry()
	service.CreateErr = status.Error(codes.AlreadyExists, "glossary medical already exists")

	_, err := reg.Register(context.Background(), "medical", "en", "de", "gs://b/glossaries/medical.csv")
	require.ErrorIs(t, err, ErrRegistration)
	assert.Equal(t, "failed to create glossary: glossary medical already exists", err.Error())
}

func TestList_Defaults(t *testing.T) {
	reg, _, service := newTestRegistry()
	service.Glossaries = []*translatepb.Glossary{
		{
			Name:        parent + "/glossaries/full",
			DisplayName: "Full glossary",
			EntryCount:  42,
			Languages: &translatepb.Glossary_LanguagePair{
				LanguagePair: &translatepb.Glossary_LanguageCodePair{SourceLanguageCode: "en", TargetLanguageCode: "ru"},
			},
		},
		{Name: parent + "/glossaries/bare"},
		{},
	}

	infos, err := reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, Info{
		Name:               parent + "/glossaries/full",
		DisplayName:        "Full glossary",
		SourceLanguageCode: "en",
		TargetLanguageCode: "ru",
		EntryCount:         42,
	}, infos[0])
	assert.Equal(t, Info{Name: parent + "/glossaries/bare", DisplayName: "bare"}, infos[1])
	assert.Equal(t, Info{}, infos[2])
	assert.Equal(t, "Full glossary (en → ru, 42 entries)", infos[0].Label())
}

func TestList_Error(t *testing.T) {
	reg, _, service := newTestRegistry()
	service.ListErr = status.Error(codes.PermissionDenied, "denied")

	_, err := reg.List(context.Background())
	assert.ErrorIs(t, err, ErrListing)
}

func TestDelete(t *testing.T) {
	reg, _, service := newTestRegistry()
	service.Glossaries = []*translatepb.Glossary{{Name: "a"}, {Name: "b"}}

	require.NoError(t, reg.Delete(context.Background(), "a"))
	require.Len(t, service.Glossaries, 1)
	assert.Equal(t, "b", service.Glossaries[0].GetName())

	service.DeleteErr = status.Error(codes.NotFound, "glossary b not found")
	err := reg.Delete(context.Background(), "b")
	require.ErrorIs(t, err, ErrDeletion)
	assert.Contains(t, err.Error(), "glossary b not found")
}

func TestUploadAndCreate(t *testing.T) {
	reg, store, service := newTestRegistry()
	path := testutil.CreateGlossaryFile(t, "legal.tsv", map[string]string{"contract": "Vertrag"})

	name, err := reg.UploadAndCreate(context.Background(), path, "b", "legal", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, parent+"/glossaries/legal", name)
	assert.Contains(t, store.Objects, "b/glossaries/legal.tsv")
	assert.Equal(t, "gs://b/glossaries/legal.tsv", service.Glossaries[0].GetInputConfig().GetGcsSource().GetInputUri())
}

func TestUploadAndCreate_NoRollback(t *testing.T) {
	reg, store, service := newTestRegistry()
	service.CreateErr = status.Error(codes.InvalidArgument, "invalid glossary file")
	path := testutil.CreateGlossaryFile(t, "legal.csv", map[string]string{"contract": "Vertrag"})

	_, err := reg.UploadAndCreate(context.Background(), path, "b", "legal", "en", "de")
	require.ErrorIs(t, err, ErrRegistration)
	assert.Contains(t, store.Objects, "b/glossaries/legal.csv", "uploaded object is left behind")
}

func TestUploadAndCreate_UploadFailureSkipsRegistration(t *testing.T) {
	reg, store, service := newTestRegistry()
	store.PutErr = errors.New("network down")
	path := testutil.CreateGlossaryFile(t, "legal.csv", map[string]string{"a": "b"})

	_, err := reg.UploadAndCreate(context.Background(), path, "b", "legal", "en", "de")
	require.ErrorIs(t, err, ErrStorage)
	assert.Empty(t, service.Calls)
}
