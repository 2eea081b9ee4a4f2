// Package jsonx extracts a JSON object from free-form model output.
// Language models asked for structured output often wrap it in prose or a
// fenced code block, so extraction is best-effort.
package jsonx

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object found in text")

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractObject tries, in order: the whole text as JSON, the first fenced
// code block, then the substring between the first '{' and last '}'.
// The first candidate that parses wins.
func ExtractObject(text string, v interface{}) error {
	trimmed := strings.TrimSpace(text)

	if json.Unmarshal([]byte(trimmed), v) == nil {
		return nil
	}

	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		if json.Unmarshal([]byte(strings.TrimSpace(m[1])), v) == nil {
			return nil
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if json.Unmarshal([]byte(trimmed[start:end+1]), v) == nil {
			return nil
		}
	}

	return ErrNoJSON
}
