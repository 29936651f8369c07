package common

import (
	"strings"
	"testing"
)

func TestWrapStringShortInput(t *testing.T) {
	if WrapString("short", 80) != "short" {
		t.Error("Expected short input to pass through unchanged")
	}
}

func TestWrapStringSplitsAtSpaces(t *testing.T) {
	wrapped := WrapString("alpha beta gamma delta", 11)

	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 11 {
			t.Errorf("Line exceeds width: %q", line)
		}
	}
	if strings.ReplaceAll(wrapped, "\n", " ") != "alpha beta gamma delta" {
		t.Errorf("Wrapping lost content: %q", wrapped)
	}
}

func TestTruncate(t *testing.T) {
	if Truncate("short", 10) != "short" {
		t.Error("Expected short input to pass through unchanged")
	}
	if Truncate("a very long instruction", 6) != "a very..." {
		t.Errorf("Unexpected truncation: %q", Truncate("a very long instruction", 6))
	}
}
