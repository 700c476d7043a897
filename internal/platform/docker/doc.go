// Package docker wraps the Docker CLI for preflight checks and compose
// operations.
//
// The installer never links a Docker SDK; like the rest of the local
// tooling it shells out to the client binary the user already has.
// [Detect] resolves the client, verifies the daemon is reachable and
// picks the available compose flavor exactly once; the returned
// [Runtime] caches that choice for every subsequent invocation.
package docker
