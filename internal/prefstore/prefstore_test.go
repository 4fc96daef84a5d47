package prefstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalens/arenalens/schema"
)

func TestThemeDefaultsToLight(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	theme, err := store.Theme()
	require.NoError(t, err)
	assert.Equal(t, schema.LightTheme, theme)
}

func TestSetThemePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetTheme(schema.DarkTheme))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	theme, err := reopened.Theme()
	require.NoError(t, err)
	assert.Equal(t, schema.DarkTheme, theme)
}

func TestSetThemeOverwrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetTheme(schema.DarkTheme))
	require.NoError(t, store.SetTheme(schema.LightTheme))

	theme, err := store.Theme()
	require.NoError(t, err)
	assert.Equal(t, schema.LightTheme, theme)
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, store.SetTheme(schema.Theme("solarized")))
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.FileExists(t, path)
}
