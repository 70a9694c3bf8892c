package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), DefaultFile))
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"languages only", New("en", "ru")},
		{"regional codes", New("en-US", "pt-BR")},
		{"with glossary", New("en", "de").WithActiveGlossary("projects/p/locations/us-central1/glossaries/medical")},
		{"with ignore case false", New("en", "de").WithIgnoreCase(false)},
		{"everything", New("es", "fr").WithActiveGlossary("g").WithIgnoreCase(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, store.Save(tt.settings))

			loaded, ok := store.Load()
			require.True(t, ok)
			assert.Equal(t, tt.settings, loaded)
		})
	}
}

func TestStore_SaveRejectsInvalidCodes(t *testing.T) {
	tests := []Settings{
		New("eng", "de"),
		New("en", "DE"),
		New("en-us", "de"),
		New("", "de"),
		New("en", ""),
	}

	for _, s := range tests {
		store := newTestStore(t)
		err := store.Save(s)
		assert.ErrorIs(t, err, ErrInvalid, "settings %+v", s)
		assert.False(t, store.Exists())
	}
}

func TestStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, store.Exists())

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestStore_LoadCorrupted(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{defaultSourceLanguage"},
		{"empty", ""},
		{"null", "null"},
		{"array", `["en","de"]`},
		{"three letter code", `{"defaultSourceLanguage":"eng","defaultTargetLanguage":"de"}`},
		{"uppercase code", `{"defaultSourceLanguage":"EN","defaultTargetLanguage":"de"}`},
		{"missing target", `{"defaultSourceLanguage":"en"}`},
		{"numeric language", `{"defaultSourceLanguage":1,"defaultTargetLanguage":"de"}`},
		{"wrong typed glossary", `{"defaultSourceLanguage":"en","defaultTargetLanguage":"de","activeGlossary":7}`},
		{"wrong typed ignore case", `{"defaultSourceLanguage":"en","defaultTargetLanguage":"de","glossaryIgnoreCase":"yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0644))

			assert.True(t, store.Exists())
			_, ok := store.Load()
			assert.False(t, ok)
		})
	}
}

func TestStore_LoadOptionalFields(t *testing.T) {
	store := newTestStore(t)
	content := `{"defaultSourceLanguage":"en","defaultTargetLanguage":"de","activeGlossary":"g","glossaryIgnoreCase":false}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "g", loaded.ActiveGlossary)
	assert.False(t, loaded.IgnoreCase())
}

func TestStore_ExistsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, NewStore(dir).Exists())
}

func TestStore_SaveWritesJSONKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(New("en", "de").WithActiveGlossary("g")))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"defaultSourceLanguage":"en","defaultTargetLanguage":"de","activeGlossary":"g"}`, string(data))
}
