package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// Models wrap JSON in markdown fences or prepend prose even when asked for
// bare JSON. Extraction is lenient on the wrapper and strict on the payload:
// fences and surrounding text are stripped, comments and trailing commas are
// removed, and the result must still parse and validate downstream.

var (
	fencedObjectRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	fencedArrayRe  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*\\])\\s*```")
)

// ExtractObject returns the first JSON object embedded in content.
func ExtractObject(content string) (string, error) {
	if m := fencedObjectRe.FindStringSubmatch(content); len(m) > 1 {
		return cleanJSON(m[1]), nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return cleanJSON(content[start : end+1]), nil
	}
	return "", fmt.Errorf("no JSON object in model output")
}

// ExtractArray returns the first JSON array embedded in content.
func ExtractArray(content string) (string, error) {
	if m := fencedArrayRe.FindStringSubmatch(content); len(m) > 1 {
		return cleanJSON(m[1]), nil
	}
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start >= 0 && end > start {
		return cleanJSON(content[start : end+1]), nil
	}
	return "", fmt.Errorf("no JSON array in model output")
}

// cleanJSON strips // line comments and trailing commas, both of which some
// models emit despite instructions. String contents are left untouched.
func cleanJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(stripLineComment(line))
		b.WriteByte('\n')
	}
	return stripTrailingCommas(strings.TrimSpace(b.String()))
}

// stripLineComment removes a // comment from line unless the slashes sit
// inside a JSON string literal.
func stripLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == '/' && !inString && i+1 < len(line) && line[i+1] == '/':
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

func stripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}
