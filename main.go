// Package main is the entry point for the pyobf CLI.
package main

import "pyobf.dev/pkg/pyobf/cmd"

func main() {
	cmd.Execute()
}
