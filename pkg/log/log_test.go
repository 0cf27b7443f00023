package log

import (
	"bytes"
	"strings"
	"testing"
)

// capture redirects Output for the duration of fn. Tests using it must not
// run in parallel.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	old := Output
	var buf bytes.Buffer
	Output = &buf
	defer func() { Output = old }()

	fn()
	return buf.String()
}

func TestErrorMsg(t *testing.T) {
	output := capture(t, func() {
		ErrorMsg("test error: %s", "something")
	})

	if !strings.Contains(output, "[!] Error: test error: something") {
		t.Errorf("ErrorMsg() output does not contain expected text: %q", output)
	}
}

func TestInfoMsg(t *testing.T) {
	output := capture(t, func() {
		InfoMsg("test info: %s", "something")
	})

	if !strings.Contains(output, "[+] test info: something") {
		t.Errorf("InfoMsg() output does not contain expected text: %q", output)
	}
}

func TestWarnMsg(t *testing.T) {
	output := capture(t, func() {
		WarnMsg("careful: %d", 3)
	})

	if !strings.Contains(output, "[~] careful: 3") {
		t.Errorf("WarnMsg() output does not contain expected text: %q", output)
	}
}

func TestDebugMsg(t *testing.T) {
	old := Verbose
	defer func() { Verbose = old }()

	Verbose = false
	if output := capture(t, func() { DebugMsg("hidden") }); output != "" {
		t.Errorf("DebugMsg() printed while not verbose: %q", output)
	}

	Verbose = true
	if output := capture(t, func() { DebugMsg("shown") }); !strings.Contains(output, "shown") {
		t.Errorf("DebugMsg() output does not contain expected text: %q", output)
	}
}
