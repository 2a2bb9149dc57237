// Package intraline implements intra-line diffing by splitting a pair of
// lines into a common prefix, a changed middle, and a common suffix.
package intraline

import (
	"unicode/utf8"

	"github.com/fwojciec/diffkit"
)

// Compile-time interface verification.
var _ diffkit.SpanDiffer = (*Differ)(nil)

// Differ computes character-level spans for a pair of lines. It always
// takes the maximal common prefix and the maximal common suffix that does
// not overlap the prefix region, so results are deterministic. This is an
// approximation of a minimal character diff, but concatenating either
// side's spans always reconstructs that side's input exactly.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// DiffLine returns spans for both the old and new line, marking which
// portions changed between them.
func (d *Differ) DiffLine(old, new string) (oldSpans, newSpans []diffkit.Span) {
	if old == "" && new == "" {
		return nil, nil
	}
	if old == new {
		span := diffkit.Span{Text: old, Changed: false}
		return []diffkit.Span{span}, []diffkit.Span{span}
	}
	if old == "" {
		return nil, []diffkit.Span{{Text: new, Changed: true}}
	}
	if new == "" {
		return []diffkit.Span{{Text: old, Changed: true}}, nil
	}

	prefix := commonPrefixLen(old, new)
	suffix := commonSuffixLen(old[prefix:], new[prefix:])
	return buildSpans(old, prefix, suffix), buildSpans(new, prefix, suffix)
}

// commonPrefixLen returns the byte length of the longest common prefix
// of a and b that falls on a rune boundary in both.
func commonPrefixLen(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	for i > 0 && (!runeBoundary(a, i) || !runeBoundary(b, i)) {
		i--
	}
	return i
}

// commonSuffixLen returns the byte length of the longest common suffix
// of a and b that falls on a rune boundary in both. Callers pass the
// remainders after the common prefix, so the suffix never overlaps it.
func commonSuffixLen(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	i := 0
	for i < limit && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	for i > 0 && (!runeBoundary(a, len(a)-i) || !runeBoundary(b, len(b)-i)) {
		i--
	}
	return i
}

func runeBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// buildSpans splits s into prefix, middle and suffix spans. An empty
// middle means nothing changed on this side, so the whole line is one
// unchanged span.
func buildSpans(s string, prefix, suffix int) []diffkit.Span {
	middle := s[prefix : len(s)-suffix]
	if middle == "" {
		return []diffkit.Span{{Text: s, Changed: false}}
	}

	spans := make([]diffkit.Span, 0, 3)
	if prefix > 0 {
		spans = append(spans, diffkit.Span{Text: s[:prefix], Changed: false})
	}
	spans = append(spans, diffkit.Span{Text: middle, Changed: true})
	if suffix > 0 {
		spans = append(spans, diffkit.Span{Text: s[len(s)-suffix:], Changed: false})
	}
	return spans
}
