package extract

import (
	"strings"
	"testing"
)

func TestExtractTaggedFence(t *testing.T) {
	raw := "```dot\ndigraph Fishbone { A -> B; }\n```"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != "digraph Fishbone { A -> B; }" {
		t.Errorf("Unexpected payload: %q", result.Payload)
	}
	if result.Raw != raw {
		t.Error("Expected Raw to carry the original response")
	}
}

func TestExtractTaggedFenceWithProse(t *testing.T) {
	raw := "Here is the diagram you asked for:\n```dot\ndigraph Fishbone {\n  A -> B;\n}\n```\nLet me know if you need changes."
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if !strings.HasPrefix(result.Payload, "digraph Fishbone") {
		t.Errorf("Expected payload to start with the prefix, got %q", result.Payload)
	}
	if strings.Contains(result.Payload, "Let me know") {
		t.Error("Expected trailing prose to be stripped")
	}
}

func TestExtractRoundTrip(t *testing.T) {
	payload := "digraph Fishbone {\n  rankdir=LR;\n  Cause -> Effect;\n}"
	raw := "```dot\n" + payload + "\n```"

	result := DOT().Extract(raw)
	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != payload {
		t.Errorf("Round trip mismatch:\nwant %q\ngot  %q", payload, result.Payload)
	}
}

func TestExtractGenericFenceWithPrefix(t *testing.T) {
	raw := "Sure:\n```\ndigraph Fishbone { X -> Y; }\n```"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != "digraph Fishbone { X -> Y; }" {
		t.Errorf("Unexpected payload: %q", result.Payload)
	}
}

func TestExtractGenericFenceDropsTagLine(t *testing.T) {
	raw := "```graphviz\ndigraph Fishbone { X -> Y; }\n```"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != "digraph Fishbone { X -> Y; }" {
		t.Errorf("Expected the tag line to be dropped, got %q", result.Payload)
	}
}

func TestExtractFirstMatchingBlockWins(t *testing.T) {
	raw := "```\ndigraph Fishbone { first; }\n```\nand another:\n```\ndigraph Fishbone { second; }\n```"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if !strings.Contains(result.Payload, "first") {
		t.Errorf("Expected the first matching block, got %q", result.Payload)
	}
}

func TestExtractBarePrefix(t *testing.T) {
	raw := "Here you go:\ndigraph Fishbone {\n  A -> B;\n}"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if !strings.HasPrefix(result.Payload, "digraph Fishbone") {
		t.Errorf("Expected payload from the prefix onward, got %q", result.Payload)
	}
	if strings.Contains(result.Payload, "Here you go") {
		t.Error("Expected the preamble to be cut")
	}
}

func TestExtractIdempotentOnBareText(t *testing.T) {
	payload := "digraph Fishbone {\n  A -> B;\n}"

	first := DOT().Extract(payload)
	if !first.Found {
		t.Fatal("Expected payload to be found")
	}
	second := DOT().Extract(first.Payload)
	if !second.Found {
		t.Fatal("Expected re-extraction to find the payload")
	}
	if second.Payload != first.Payload {
		t.Errorf("Re-extraction changed the payload:\nwant %q\ngot  %q", first.Payload, second.Payload)
	}
}

func TestExtractNotFound(t *testing.T) {
	result := DOT().Extract("no structural markers here")

	if result.Found {
		t.Error("Expected no payload to be found")
	}
	if result.Payload != "" {
		t.Errorf("Expected empty payload, got %q", result.Payload)
	}
	if result.Raw != "no structural markers here" {
		t.Error("Expected Raw to carry the original response")
	}
}

func TestExtractUnterminatedFenceFallsBackToPrefix(t *testing.T) {
	raw := "```dot\ndigraph Fishbone { A -> B; }"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if !strings.HasPrefix(result.Payload, "digraph Fishbone") {
		t.Errorf("Expected payload from the prefix onward, got %q", result.Payload)
	}
}

func TestExtractEmptyTaggedFenceDoesNotWin(t *testing.T) {
	raw := "```dot\n\n```\ndigraph Fishbone { A -> B; }"
	result := DOT().Extract(raw)

	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != "digraph Fishbone { A -> B; }" {
		t.Errorf("Expected the bare diagram, got %q", result.Payload)
	}
}

func TestExtractPayloadIsSubstringOfRaw(t *testing.T) {
	raws := []string{
		"```dot\ndigraph Fishbone { A; }\n```",
		"prose digraph Fishbone { B; } trailing",
		"```\ndigraph Fishbone { C; }\n```",
	}

	for _, raw := range raws {
		result := DOT().Extract(raw)
		if !result.Found {
			t.Errorf("Expected payload for %q", raw)
			continue
		}
		if result.Payload == "" {
			t.Errorf("Found result must carry a non-empty payload for %q", raw)
		}
		if !strings.Contains(result.Raw, result.Payload) {
			t.Errorf("Payload %q is not a substring of raw %q", result.Payload, raw)
		}
	}
}

func TestExtractCustomMarkers(t *testing.T) {
	extractor := Extractor{Lang: "json", Prefix: `{"summary"`}
	raw := "```json\n{\"summary\": \"ok\"}\n```"

	result := extractor.Extract(raw)
	if !result.Found {
		t.Fatal("Expected payload to be found")
	}
	if result.Payload != `{"summary": "ok"}` {
		t.Errorf("Unexpected payload: %q", result.Payload)
	}
}
