package tests

import (
	"strings"
	"testing"
)

var datasetPath = "fixtures/dataset.yaml"

// assertInOrder checks that every expected fragment appears in output after the previous one.
func assertInOrder(t *testing.T, output string, expected []string) {
	t.Helper()
	rest := output
	for _, want := range expected {
		idx := strings.Index(rest, want)
		if idx < 0 {
			t.Errorf("expected %q after previous matches; remaining output:\n%s", want, rest)
			return
		}
		rest = rest[idx+len(want):]
	}
}
