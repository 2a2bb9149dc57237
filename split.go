package diffkit

import "strings"

// SplitLines splits text into lines on '\n', treating the newline as a
// line terminator rather than a separator: a trailing newline does not
// produce a final empty line, and an empty input produces no lines.
// Carriage returns and other whitespace are preserved as line content.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
