//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package tui

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollReadable waits up to timeout for fd to become readable.
// EINTR (a signal such as SIGWINCH) reports not ready without error.
func pollReadable(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
