package testutil

import (
	"fmt"
	"net"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

const LocalIP = "127.0.0.1"

// GetFreePort returns a TCP port that is available to listen on, for the
// local host 127.0.0.1.
//
// This works by binding a new TCP socket on port 0, which requests the OS to
// allocate a free port. There is no strict guarantee that the port will remain
// available after this function returns, but it should be safe to assume that
// a given port will not be allocated again to any process on this machine
// within a few seconds.
func GetFreePort(t *testing.T) int {
	l, err := net.Listen("tcp", LocalIP+":0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	// On Linux and some BSD variants, ephemeral ports are randomized, and may
	// consequently repeat within a short time frame after the listening end
	// has been closed. To avoid this, we make a connection to the port, then
	// close that connection from the server's side, which puts the connection
	// in TIME_WAIT state for some time. While it remains in that state, the
	// OS will not reallocate that port number for bind(:0) syscalls, yet we
	// are not prevented from explicitly binding to it.
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		tcpAddr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:%d", LocalIP, port))
		require.NoError(t, err, "error resolving address")
		r, err := net.DialTCP("tcp", nil, tcpAddr)
		require.NoError(t, err, "failed to dial tcp")
		c, err := l.Accept()
		require.NoError(t, err, "failed to accept connection")
		// Closing the socket from the server side
		require.NoError(t, c.Close())
		defer func() {
			require.NoError(t, r.Close())
		}()
	}

	return port
}

func GetFreeHostPort(t *testing.T) string {
	return LocalIP + ":" + strconv.Itoa(GetFreePort(t))
}
