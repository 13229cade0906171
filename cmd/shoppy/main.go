package main

import (
	"os"
	"runtime"

	"github.com/BrandonKowalski/shoppy/cmd/shoppy/commands"
)

// SDL must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
