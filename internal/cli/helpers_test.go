package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

// runIn executes the CLI against an isolated data directory.
func runIn(t *testing.T, dataDir string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	var out, errOut bytes.Buffer
	code := Run(append([]string{"--data-dir", dataDir}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func bufioReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}
