// Package staging creates the install directory tree and guards it
// against concurrent installer runs.
//
// Staging is idempotent: directories that already exist are left in
// place. The two bind-mount directories are made world-writable on
// POSIX systems because the gateway runs under a non-root service
// account inside the container whose UID rarely matches the host user.
package staging
