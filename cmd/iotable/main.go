// Package main implements the iotable binary. It is the only
// public-facing entry point to iotable, since its Go packages are all
// internal.
package main

import "github.com/replit/iotable/internal/cli"

// Main entry point for the iotable binary.
func main() {
	cli.DoCLI()
}
