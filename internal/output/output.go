// Package output holds the CLI's terminal printing helpers.
package output

import (
	"fmt"
	"io"
	"os"
)

// Stderr is where diagnostics go. Tests swap it out.
var Stderr io.Writer = os.Stderr

// Error prints an error line to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(Stderr, "ERROR: "+format+"\n", args...)
}

// Warning prints a warning line to stderr
func Warning(format string, args ...any) {
	fmt.Fprintf(Stderr, "WARNING: "+format+"\n", args...)
}
