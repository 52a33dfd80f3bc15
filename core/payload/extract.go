package payload

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// fenceMarker matches code fence markers opening or closing a line. A JSON
// string cannot span lines, so line edges are never inside a string value.
var fenceMarker = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_-]*[ \t]*|```[ \t]*$")

// StripFences removes code fence markers at the start or end of lines and
// leaves backticks elsewhere untouched.
func StripFences(text string) string {
	return fenceMarker.ReplaceAllString(text, "")
}

// Extract returns the first balanced, valid JSON object found in text.
// Code fence markers are stripped first. Braces inside string literals are
// ignored.
func Extract(text string) (string, error) {
	cleaned := StripFences(text)

	reason := "no opening brace"
	for offset := 0; offset < len(cleaned); {
		start := strings.IndexByte(cleaned[offset:], '{')
		if start < 0 {
			break
		}
		start += offset

		end, ok := balancedEnd(cleaned, start)
		if !ok {
			reason = "unbalanced braces"
			break
		}

		candidate := cleaned[start:end]
		if gjson.Valid(candidate) {
			return candidate, nil
		}
		// Prose may contain braces of its own, try the next object.
		reason = "balanced object is not valid JSON"
		offset = start + 1
	}

	return "", fmt.Errorf("%w: %s", ErrNoPayload, reason)
}

// balancedEnd returns the index just past the brace that closes the object
// opened at start.
func balancedEnd(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
