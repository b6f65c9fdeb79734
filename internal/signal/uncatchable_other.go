//go:build !unix

package signal

import (
	"os"
	"syscall"
)

var uncatchable = []os.Signal{syscall.SIGKILL}
