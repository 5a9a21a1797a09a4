// Package main provides the showcase CLI: a terminal rendering of every
// AlignItems x JustifyContent pairing of the layout engine.
//
// Usage:
//
//	showcase [flags]          Show the grid full screen until q, Esc or Ctrl+C
//	showcase --dump           Print one frame to stdout and exit
//	showcase version          Print version information
//
// Examples:
//
//	showcase --tracks explicit
//	showcase --dump --plain --width 160 --height 80
//	showcase --config showcase.hcl --log /tmp/showcase.log
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLIRoot().NewCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
