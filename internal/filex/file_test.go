package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "state")
		t.Setenv(ConfigDirEnvVar, filepath.Join(t.TempDir(), "ignored"))

		got, err := AppDir(want, "mycomarket")
		require.NoError(t, err)
		assert.Equal(t, want, got)

		info, err := os.Stat(got)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("env var used when no override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "fromenv")
		t.Setenv(ConfigDirEnvVar, want)

		got, err := AppDir("", "mycomarket")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("falls back to user config dir", func(t *testing.T) {
		t.Setenv(ConfigDirEnvVar, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		got, err := AppDir("", "mycomarket")
		require.NoError(t, err)
		assert.Contains(t, got, "mycomarket")
	})
}
