//go:build windows

package docker

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// checkElevation verifies the process runs with administrator
// privileges. Docker Desktop named pipes and the install directory
// layout both need elevation on Windows, so the installer aborts before
// any filesystem mutation without it.
func checkElevation() error {
	if !windows.GetCurrentProcessToken().IsElevated() {
		return fmt.Errorf("%w: re-run from an elevated terminal", ErrNotElevated)
	}
	return nil
}
