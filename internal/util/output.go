package util

import (
	"fmt"
	"os"

	"github.com/replit/iotable/internal/config"
)

// Die writes "error: " and the formatted message to stderr, adds a
// newline, and terminates the process.
func Die(format string, a ...interface{}) {
	ErrorColor.Fprint(os.Stderr, "error: ")
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// Log writes a message to stderr unless --quiet was given.
func Log(format string, a ...interface{}) {
	if !config.Quiet {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
}

// ProgressMsg tells the user what iotable is about to do, unless
// --quiet was given.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Fprintln(os.Stderr, "-->", msg)
	}
}
