// Package tokendiff implements intra-line diffing at token granularity:
// lines are split into word, whitespace and symbol tokens, and an LCS
// over the token sequences decides which portions changed.
package tokendiff

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/diffkit"
)

// Compile-time interface verification.
var _ diffkit.SpanDiffer = (*Differ)(nil)

// similarityThreshold is the minimum common-token ratio for token-level
// diffing. Below it, lines are treated as complete replacements.
const similarityThreshold = 0.4

// Differ computes token-level spans for a pair of lines.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// DiffLine returns spans for both the old and new line, marking which
// portions changed between them. Dissimilar lines come back as a single
// changed span per side rather than a noisy token interleave.
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

	oldTokens := tokenize(old)
	newTokens := tokenize(new)
	if similarity(oldTokens, newTokens) < similarityThreshold {
		return []diffkit.Span{{Text: old, Changed: true}},
			[]diffkit.Span{{Text: new, Changed: true}}
	}
	return lcsSpans(oldTokens, newTokens)
}

// tokenize splits a line into word runs ([A-Za-z0-9_]+), whitespace runs,
// and single runes for everything else.
func tokenize(s string) []string {
	tokens := make([]string, 0, len(s)/3+1)
	for i := 0; i < len(s); {
		start := i
		switch c := s[i]; {
		case isWordByte(c):
			for i < len(s) && isWordByte(s[i]) {
				i++
			}
		case c == ' ' || c == '\t':
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// similarity estimates token overlap as 2*common/(len(a)+len(b)).
func similarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	counts := make(map[string]int, len(a))
	for _, t := range a {
		counts[t]++
	}
	common := 0
	for _, t := range b {
		if counts[t] > 0 {
			counts[t]--
			common++
		}
	}
	return float64(2*common) / float64(len(a)+len(b))
}

// spanBuilder accumulates tokens into spans, merging adjacent tokens
// that share a changed flag.
type spanBuilder struct {
	spans   []diffkit.Span
	buf     strings.Builder
	changed bool
}

func (b *spanBuilder) add(text string, changed bool) {
	if b.buf.Len() > 0 && b.changed != changed {
		b.flush()
	}
	b.buf.WriteString(text)
	b.changed = changed
}

func (b *spanBuilder) flush() {
	if b.buf.Len() > 0 {
		b.spans = append(b.spans, diffkit.Span{Text: b.buf.String(), Changed: b.changed})
		b.buf.Reset()
	}
}

func (b *spanBuilder) result() []diffkit.Span {
	b.flush()
	return b.spans
}

// lcsSpans computes the LCS of the token sequences and emits merged
// spans: tokens on the LCS are unchanged, gap tokens are changed.
func lcsSpans(oldTokens, newTokens []string) (oldSpans, newSpans []diffkit.Span) {
	m, n := len(oldTokens), len(newTokens)

	// Flat DP table, table[i*(n+1)+j] = LCS length of prefixes i, j.
	stride := n + 1
	table := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case oldTokens[i-1] == newTokens[j-1]:
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			case table[(i-1)*stride+j] >= table[i*stride+j-1]:
				table[i*stride+j] = table[(i-1)*stride+j]
			default:
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	// Backtrack to the matched token pairs, then reverse them.
	type pair struct{ oldIdx, newIdx int }
	matches := make([]pair, 0, table[m*stride+n])
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case oldTokens[i-1] == newTokens[j-1]:
			matches = append(matches, pair{i - 1, j - 1})
			i--
			j--
		case table[(i-1)*stride+j] >= table[i*stride+j-1]:
			i--
		default:
			j--
		}
	}
	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}

	var oldOut, newOut spanBuilder
	oldIdx, newIdx := 0, 0
	for _, match := range matches {
		for ; oldIdx < match.oldIdx; oldIdx++ {
			oldOut.add(oldTokens[oldIdx], true)
		}
		for ; newIdx < match.newIdx; newIdx++ {
			newOut.add(newTokens[newIdx], true)
		}
		oldOut.add(oldTokens[oldIdx], false)
		newOut.add(newTokens[newIdx], false)
		oldIdx++
		newIdx++
	}
	for ; oldIdx < m; oldIdx++ {
		oldOut.add(oldTokens[oldIdx], true)
	}
	for ; newIdx < n; newIdx++ {
		newOut.add(newTokens[newIdx], true)
	}
	return oldOut.result(), newOut.result()
}
