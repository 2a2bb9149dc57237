// Package myers implements line-sequence alignment using the Myers
// minimal edit script algorithm.
package myers

import "github.com/fwojciec/diffkit"

// Compile-time interface verification.
var _ diffkit.Matcher = (*Matcher)(nil)

// Matcher aligns two line sequences into opcodes describing a minimal
// edit script. The result is deterministic: among equally short scripts
// the canonical Myers path is chosen, which prefers consuming old lines
// first and keeps the earliest common run maximal.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns opcodes covering both sequences completely and in order.
// It runs in O((N+M)*D) time where D is the size of the edit script.
func (m *Matcher) Match(old, new []string) []diffkit.Opcode {
	switch {
	case len(old) == 0 && len(new) == 0:
		return nil
	case len(old) == 0:
		return []diffkit.Opcode{{Kind: diffkit.OpInsert, NewEnd: len(new)}}
	case len(new) == 0:
		return []diffkit.Opcode{{Kind: diffkit.OpDelete, OldEnd: len(old)}}
	}
	return coalesce(matchPoints(old, new), len(old), len(new))
}

// matchPoints runs the forward Myers search and backtracks through the
// per-distance snapshots, returning the matched index pairs of the LCS
// in increasing order.
func matchPoints(a, b []string) [][2]int {
	n, m := len(a), len(b)
	max := n + m
	offset := max
	v := make([]int, 2*max+1)
	var trace [][]int

search:
	for d := 0; d <= max; d++ {
		trace = append(trace, append([]int(nil), v...))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1] // move down: insertion
			} else {
				x = v[offset+k-1] + 1 // move right: deletion
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	var matches [][2]int // collected in reverse order
	x, y := n, m
	for d := len(trace) - 1; d >= 0 && (x > 0 || y > 0); d-- {
		vd := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && vd[offset+k-1] < vd[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := vd[offset+prevK]
		prevY := prevX - prevK

		// Diagonal moves between this point and the predecessor are
		// matched lines.
		for x > prevX && y > prevY {
			matches = append(matches, [2]int{x - 1, y - 1})
			x--
			y--
		}
		if d > 0 {
			x, y = prevX, prevY
		}
	}

	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}
	return matches
}

// coalesce turns matched index pairs into opcodes: consecutive matches
// become one Equal opcode, and each gap becomes a Replace, Delete or
// Insert depending on which sides it spans.
func coalesce(matches [][2]int, n, m int) []diffkit.Opcode {
	var ops []diffkit.Opcode
	oldPos, newPos := 0, 0

	i := 0
	for {
		gapOld, gapNew := n, m
		if i < len(matches) {
			gapOld, gapNew = matches[i][0], matches[i][1]
		}
		if oldPos < gapOld || newPos < gapNew {
			ops = append(ops, gapOpcode(oldPos, gapOld, newPos, gapNew))
		}
		if i == len(matches) {
			break
		}

		j := i
		for j+1 < len(matches) &&
			matches[j+1][0] == matches[j][0]+1 &&
			matches[j+1][1] == matches[j][1]+1 {
			j++
		}
		ops = append(ops, diffkit.Opcode{
			Kind:     diffkit.OpEqual,
			OldStart: matches[i][0],
			OldEnd:   matches[j][0] + 1,
			NewStart: matches[i][1],
			NewEnd:   matches[j][1] + 1,
		})
		oldPos, newPos = matches[j][0]+1, matches[j][1]+1
		i = j + 1
	}
	return ops
}

func gapOpcode(oldStart, oldEnd, newStart, newEnd int) diffkit.Opcode {
	op := diffkit.Opcode{
		OldStart: oldStart,
		OldEnd:   oldEnd,
		NewStart: newStart,
		NewEnd:   newEnd,
	}
	switch {
	case oldStart < oldEnd && newStart < newEnd:
		op.Kind = diffkit.OpReplace
	case oldStart < oldEnd:
		op.Kind = diffkit.OpDelete
	default:
		op.Kind = diffkit.OpInsert
	}
	return op
}
