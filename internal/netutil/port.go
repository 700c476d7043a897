// Package netutil provides small TCP helpers for install preflight.
package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// listen is swapped out in tests.
var listen = net.Listen

// CheckPortFree reports whether a TCP port can still be bound on the
// local host. A port that is already in use is not fatal for the
// install, the existing listener may well be a previous gateway run,
// but the caller should surface it before compose up.
func CheckPortFree(port int) error {
	ln, err := listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("port %d is already in use: %w", port, err)
	}
	return ln.Close()
}
