//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package app

import "os"

// notifyResize is a no-op; size changes are picked up by polling.
func notifyResize(chan<- os.Signal) {}
