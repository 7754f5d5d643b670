package main

import "os"

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1 // invalid arguments, config or read failure
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
