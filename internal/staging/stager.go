package staging

import (
	"fmt"
	"os"
	"runtime"

	"github.com/openclaw/installer/internal/config"
)

// bindMountPerm makes the bind-mount sources writable for the
// container's service account regardless of UID mapping. Meaningless on
// Windows, where the chmod is skipped.
const bindMountPerm = 0o777

// Stage creates the install directory along with its config and
// workspace subdirectories. Already-existing directories are success,
// not an error.
func Stage(d *config.Deployment) error {
	if err := os.MkdirAll(d.InstallDir, 0o755); err != nil {
		return fmt.Errorf("failed to create install directory %s: %w", d.InstallDir, err)
	}

	for _, dir := range []string{d.ConfigDir(), d.WorkspaceDir()} {
		if err := os.MkdirAll(dir, bindMountPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		if runtime.GOOS == "windows" {
			continue
		}
		// MkdirAll applies the process umask; chmod restores the intended
		// bits on directories that already existed as well.
		if err := os.Chmod(dir, bindMountPerm); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", dir, err)
		}
	}

	return nil
}
