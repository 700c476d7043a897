package staging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/installer/internal/config"
)

func testDeployment(t *testing.T) *config.Deployment {
	t.Helper()
	d, err := config.New(filepath.Join(t.TempDir(), "openclaw"), config.DefaultPort)
	require.NoError(t, err)
	return d
}

func TestStage_CreatesTree(t *testing.T) {
	t.Parallel()

	d := testDeployment(t)
	require.NoError(t, Stage(d))

	for _, dir := range []string{d.InstallDir, d.ConfigDir(), d.WorkspaceDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "directory %s must exist after staging", dir)
		assert.True(t, info.IsDir())
	}
}

func TestStage_Idempotent(t *testing.T) {
	t.Parallel()

	d := testDeployment(t)
	require.NoError(t, Stage(d))

	// Pre-existing content survives a re-run.
	marker := filepath.Join(d.ConfigDir(), "settings.json")
	require.NoError(t, os.WriteFile(marker, []byte("{}"), 0o644))

	require.NoError(t, Stage(d))

	_, err := os.Stat(marker)
	assert.NoError(t, err)
}

func TestStage_BindMountPermissions(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	d := testDeployment(t)
	require.NoError(t, Stage(d))

	for _, dir := range []string{d.ConfigDir(), d.WorkspaceDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o777), info.Mode().Perm(), "dir %s", dir)
	}
}

func TestAcquire_Release(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lock, err := Acquire(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, LockFileName))
	require.NoError(t, err)

	require.NoError(t, lock.Release())
	_, err = os.Stat(filepath.Join(dir, LockFileName))
	assert.True(t, os.IsNotExist(err))

	// Double release is a no-op.
	assert.NoError(t, lock.Release())
}

func TestAcquire_HeldByLiveProcess(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("liveness probing is unavailable on windows")
	}

	dir := t.TempDir()
	first, err := Acquire(dir)
	require.NoError(t, err)
	defer first.Release()

	// The lock records this test process's PID, which is alive.
	_, err = Acquire(dir)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAcquire_StaleLockReplaced(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("liveness probing is unavailable on windows")
	}

	dir := t.TempDir()
	// A PID far above any plausible live process.
	require.NoError(t, os.WriteFile(filepath.Join(dir, LockFileName), []byte("999999999\n"), 0o644))

	lock, err := Acquire(dir)
	require.NoError(t, err)
	defer lock.Release()
}

func TestAcquire_GarbageLockReplaced(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LockFileName), []byte("not-a-pid"), 0o644))

	lock, err := Acquire(dir)
	require.NoError(t, err)
	defer lock.Release()
}
