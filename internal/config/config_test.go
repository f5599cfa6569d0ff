package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	p := Load()
	assert.Equal(t, Default(), p)
	assert.True(t, p.GridVisible)
	assert.False(t, p.ShowFPS)
}

func TestLoadInvalidFileYieldsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0755))
	require.NoError(t, os.WriteFile(PrefsPath, []byte("not json"), 0644))
	assert.Equal(t, Default(), Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	want := Prefs{
		ShowFPS:      true,
		GridVisible:  false,
		LastDocument: "scenes/loft.json",
	}
	require.NoError(t, Save(want))
	assert.Equal(t, want, Load())
}
