//go:build !windows

package docker

// checkElevation is a no-op outside Windows; membership in the docker
// group is the daemon's own access control there.
func checkElevation() error {
	return nil
}
