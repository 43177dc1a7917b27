package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent normalizes an expected text written as a raw string indented
// along with the test code. A blank first and last line are dropped, the
// indentation shared by all non-blank lines is removed, and every remaining
// leading tab becomes two spaces, the indent unit of Outline.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	indent := commonIndent(lines)

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		rest := strings.TrimLeft(line, "\t")
		lines[i] = strings.Repeat("  ", len(line)-len(rest)) + rest
	}

	return strings.Join(lines, "\n")
}

// commonIndent returns the longest run of leading white space shared by all
// non-blank lines.
func commonIndent(lines []string) string {
	var indent string

	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			indent, found = lead, true
			continue
		}

		for !strings.HasPrefix(lead, indent) {
			indent = indent[:len(indent)-1]
		}
	}

	return indent
}
