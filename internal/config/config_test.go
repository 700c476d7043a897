package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid parameters", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(string(filepath.Separator), "opt", "openclaw")
		d, err := New(dir, 8080)
		require.NoError(t, err)
		assert.Equal(t, dir, d.InstallDir)
		assert.Equal(t, 8080, d.Port)
		assert.Equal(t, Image, d.Image)
	})

	t.Run("empty install dir", func(t *testing.T) {
		t.Parallel()
		_, err := New("", 8080)
		assert.ErrorIs(t, err, ErrInstallDirEmpty)
	})

	t.Run("relative install dir", func(t *testing.T) {
		t.Parallel()
		_, err := New("relative/path", 8080)
		assert.ErrorIs(t, err, ErrInstallDirRelative)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Parallel()
		for _, port := range []int{0, -1, 65536, 100000} {
			_, err := New(t.TempDir(), port)
			assert.ErrorIs(t, err, ErrInvalidPort, "port %d", port)
		}
	})
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"empty keeps default", "", DefaultPort, false},
		{"valid port", "8080", 8080, false},
		{"lower bound", "1", 1, false},
		{"upper bound", "65535", 65535, false},
		{"zero", "0", 0, true},
		{"too large", "65536", 0, true},
		{"not a number", "eighty", 0, true},
		{"trailing garbage", "8080x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePort(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeploymentPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d, err := New(dir, DefaultPort)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "docker-compose.yml"), d.ManifestPath())
	assert.Equal(t, filepath.Join(dir, "config"), d.ConfigDir())
	assert.Equal(t, filepath.Join(dir, "workspace"), d.WorkspaceDir())
	assert.Equal(t, "http://localhost:18789", d.AccessURL())
}

func TestDefaultInstallDir(t *testing.T) {
	dir := DefaultInstallDir()
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, DefaultDirName, filepath.Base(dir))
}
