// Package parse extracts a usage percentage from raw claude CLI output.
package parse

import (
	"regexp"
	"strconv"
)

// ANSI escape code pattern
var ansiPattern = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// StripANSI removes terminal escape sequences from captured output.
func StripANSI(text string) string {
	return ansiPattern.ReplaceAllString(text, "")
}

// usagePatterns is the priority-ordered cascade, most specific first.
// The first pattern that matches anywhere in the text wins; later patterns
// are never consulted even if they would match a different number.
var usagePatterns = []struct {
	Label   string
	Pattern *regexp.Regexp
}{
	{"5-hour", regexp.MustCompile(`(?i)5-hour:\s*(\d+)%`)},
	{"model usage", regexp.MustCompile(`(?i)Model usage:\s*(\d+)%`)},
	{"usage", regexp.MustCompile(`(?i)Usage:\s*(\d+)%`)},
	{"current usage", regexp.MustCompile(`(?i)Current usage:\s*(\d+)%`)},
	{"used/of", regexp.MustCompile(`(?i)(\d+)%\s*(?:used|of)`)},
	{"bare percent", regexp.MustCompile(`(\d+)%`)},
}

// Percentage scans text for a known usage pattern and returns the captured
// integer. The value is not validated against [0, 100]; whatever the CLI
// printed is what downstream consumers get.
func Percentage(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	clean := StripANSI(text)
	for _, p := range usagePatterns {
		matches := p.Pattern.FindStringSubmatch(clean)
		if len(matches) < 2 {
			continue
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		return value, true
	}
	return 0, false
}
