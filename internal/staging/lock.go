package staging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

// LockFileName is the advisory lock created in the install directory
// for the duration of staging and manifest generation.
const LockFileName = ".openclaw-install.lock"

// ErrLocked is returned when another installer run holds the lock.
var ErrLocked = errors.New("another install is already running")

// Lock is an advisory per-directory lock. It prevents two installer
// runs from racing on the same install directory; it does not guard
// against an already-running deployment.
type Lock struct {
	path string
}

// Acquire takes the lock for dir, replacing a lock left behind by a
// dead process.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, LockFileName)

	for range 2 {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lock file %s: %w", path, err)
		}

		pid, readErr := readLockPID(path)
		if readErr == nil && pidAlive(pid) {
			return nil, fmt.Errorf("%w: lock %s held by pid %d", ErrLocked, path, pid)
		}

		// Stale lock from a dead or unreadable owner; remove and retry once.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lock %s: %w", path, err)
		}
	}

	return nil, fmt.Errorf("%w: lock %s could not be acquired", ErrLocked, path)
}

// Release removes the lock file. Releasing an already-released lock is
// a no-op.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file %s: %w", l.path, err)
	}
	return nil
}

func readLockPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// pidAlive reports whether a process with the given PID exists. On
// Windows signal 0 probing is unavailable, so an existing lock is
// treated as live.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
