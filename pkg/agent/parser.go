// Package agent implements the five research agents: planner, finder,
// summarizer, reviewer, and writer. Each one is a thin prompt wrapper over
// the chat client with a lenient output parse and a typed default, so a
// malformed model response never aborts a run.
package agent

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	fencedJSONRe    = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*\\})\\s*```")
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
)

// ErrNoJSON is returned when model output contains no parseable JSON object.
var ErrNoJSON = errors.New("no JSON object found in model output")

// ExtractJSON pulls the most likely JSON object out of mixed model output
// and unmarshals it into v. It tries a fenced block first, then the span
// from the first '{' to the last '}', and retries once with trailing commas
// removed.
func ExtractJSON(content string, v any) error {
	candidate := jsonCandidate(content)
	if candidate == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}
	repaired := trailingCommaRe.ReplaceAllString(candidate, "$1")
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return ErrNoJSON
	}
	return nil
}

func jsonCandidate(content string) string {
	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	stripped := strings.TrimSpace(content)
	start := strings.Index(stripped, "{")
	end := strings.LastIndex(stripped, "}")
	if start == -1 || end == -1 || start >= end {
		return ""
	}
	return strings.TrimSpace(stripped[start : end+1])
}
