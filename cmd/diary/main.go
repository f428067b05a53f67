// Package main is the entry point for the diary command-line client.
// It drives the same services as the API server against the configured store.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	root, closeStore := newRootCmd(in, out, errOut)
	defer closeStore()

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errAlerted) {
			fmt.Fprintln(errOut, "Error:", err)
		}
		return 1
	}
	return 0
}
