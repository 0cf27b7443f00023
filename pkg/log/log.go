// Package log provides colored console messages for the smolclaw CLI.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Output receives all messages. It defaults to stderr so that command
// output on stdout stays machine-readable.
var Output io.Writer = os.Stderr

// Verbose enables DebugMsg output.
var Verbose = false

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()
var faint = color.New(color.Faint).FprintfFunc()

// ErrorMsg prints an error message in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(Output, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(Output, "[+] "+format, a...)
}

// WarnMsg prints a warning in yellow color.
func WarnMsg(format string, a ...interface{}) {
	yellow(Output, "[~] "+format, a...)
}

// DebugMsg prints a dimmed message, only when Verbose is set.
func DebugMsg(format string, a ...interface{}) {
	if !Verbose {
		return
	}
	faint(Output, "[.] "+format, a...)
}
