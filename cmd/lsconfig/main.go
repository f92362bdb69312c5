// Package main provides the CLI entrypoint for lsconfig.
//
// lsconfig inspects and checks labeling configs:
//   - validate parses a config and runs the structural checks
//   - inspect prints the linked model
//   - sample generates an example task
//   - diff reports whether a config edit is essential
//   - check-task validates a task against a config
//   - consistency checks a config against recorded project usage
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}
