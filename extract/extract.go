// Package extract locates structured payloads inside free-text model output.
package extract

import "strings"

const fence = "```"

// Result is the outcome of one extraction pass. Found=false means the
// response carried no recognizable payload; callers treat that as an
// expected outcome, not a fault.
type Result struct {
	Found   bool
	Payload string
	Raw     string
}

// Extractor holds the markers used to recognize a payload. Lang is the
// fence language tag; Prefix is the literal the payload is expected to
// start with.
type Extractor struct {
	Lang   string
	Prefix string
}

// DOT returns the extractor configured for Graphviz fishbone output.
func DOT() Extractor {
	return Extractor{Lang: "dot", Prefix: "digraph Fishbone"}
}

// Extract applies the matching rules in order and stops at the first hit:
// a fence tagged with Lang, then any fence whose interior carries Prefix,
// then bare text from Prefix onward. Malformed fences are not repaired.
func (e Extractor) Extract(raw string) Result {
	if e.Lang != "" {
		if interior, ok := taggedBlock(raw, e.Lang); ok {
			if payload := strings.TrimSpace(interior); payload != "" {
				return Result{Found: true, Payload: payload, Raw: raw}
			}
		}
	}

	if e.Prefix != "" {
		if idx := strings.Index(raw, e.Prefix); idx != -1 {
			if interior, ok := blockContaining(raw, e.Prefix); ok {
				return Result{Found: true, Payload: strings.TrimSpace(interior), Raw: raw}
			}
			return Result{Found: true, Payload: strings.TrimSpace(raw[idx:]), Raw: raw}
		}
	}

	return Result{Raw: raw}
}

// taggedBlock returns the interior of the first fence opened with the given
// language tag.
func taggedBlock(raw, lang string) (string, bool) {
	marker := fence + lang
	start := strings.Index(raw, marker)
	if start == -1 {
		return "", false
	}

	rest := raw[start+len(marker):]
	end := strings.Index(rest, fence)
	if end == -1 {
		return "", false
	}

	return rest[:end], true
}

// blockContaining scans generic fences and returns the first interior that
// carries the wanted substring. With balanced fences the interiors sit at
// the odd indexes of the split.
func blockContaining(raw, want string) (string, bool) {
	parts := strings.Split(raw, fence)
	limit := len(parts)
	if len(parts)%2 == 0 {
		// Odd number of fences: the trailing chunk is unterminated and is
		// not treated as an interior.
		limit--
	}
	for i := 1; i < limit; i += 2 {
		if !strings.Contains(parts[i], want) {
			continue
		}

		interior := parts[i]

		// Drop a leading language-tag line such as "graphviz".
		if nl := strings.Index(interior, "\n"); nl != -1 {
			tag := strings.TrimSpace(interior[:nl])
			if tag != "" && !strings.Contains(interior[:nl], want) && !strings.ContainsAny(tag, " \t") {
				interior = interior[nl+1:]
			}
		}

		return interior, true
	}

	return "", false
}
