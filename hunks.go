package diffkit

// BuildLines converts opcodes into the full annotated line view of a diff.
// Every line of both inputs appears exactly once (modified pairs share a
// line), with equal lines marked Unchanged. Renderers that show whole
// documents walk this view; hunk-oriented consumers use BuildHunks.
// spans may be nil to skip intra-line span computation.
func BuildLines(opcodes []Opcode, old, new []string, spans SpanDiffer) []DiffLine {
	var lines []DiffLine
	for _, op := range opcodes {
		lines = appendOpLines(lines, op, old, new, spans, Unchanged)
	}
	return lines
}

// BuildHunks groups changed opcodes into hunks with up to context equal
// lines on either side. Equal runs of at most 2*context lines between two
// changed regions are absorbed whole, merging the regions into one hunk;
// longer runs split them. spans may be nil to skip intra-line spans.
func BuildHunks(opcodes []Opcode, old, new []string, spans SpanDiffer, context int) []Hunk {
	if context < 0 {
		context = 0
	}
	groups := groupOpcodes(opcodes, context)
	hunks := make([]Hunk, 0, len(groups))
	for _, group := range groups {
		hunks = append(hunks, buildHunk(group, old, new, spans))
	}
	return hunks
}

// groupOpcodes clamps leading/trailing equal runs to n lines and splits
// equal runs longer than 2n into a trailing context for one group and a
// leading context for the next.
func groupOpcodes(opcodes []Opcode, n int) [][]Opcode {
	hasChange := false
	for _, op := range opcodes {
		if op.Kind != OpEqual {
			hasChange = true
			break
		}
	}
	if !hasChange {
		return nil
	}

	codes := make([]Opcode, len(opcodes))
	copy(codes, opcodes)

	if first := &codes[0]; first.Kind == OpEqual && first.OldEnd-first.OldStart > n {
		first.OldStart = first.OldEnd - n
		first.NewStart = first.NewEnd - n
	}
	if last := &codes[len(codes)-1]; last.Kind == OpEqual && last.OldEnd-last.OldStart > n {
		last.OldEnd = last.OldStart + n
		last.NewEnd = last.NewStart + n
	}

	var groups [][]Opcode
	var group []Opcode
	for _, c := range codes {
		if c.Kind == OpEqual && c.OldEnd-c.OldStart > 2*n {
			group = append(group, Opcode{
				Kind:     OpEqual,
				OldStart: c.OldStart,
				OldEnd:   c.OldStart + n,
				NewStart: c.NewStart,
				NewEnd:   c.NewStart + n,
			})
			groups = append(groups, group)
			group = nil
			c.OldStart = c.OldEnd - n
			c.NewStart = c.NewEnd - n
		}
		group = append(group, c)
	}
	// The remainder after the last split may hold nothing but context.
	if len(group) > 0 && !(len(group) == 1 && group[0].Kind == OpEqual) {
		groups = append(groups, group)
	}
	return groups
}

func buildHunk(group []Opcode, old, new []string, spans SpanDiffer) Hunk {
	var lines []DiffLine
	for _, op := range group {
		lines = appendOpLines(lines, op, old, new, spans, Context)
	}

	h := Hunk{Lines: lines}
	for _, line := range lines {
		if line.OldLine > 0 {
			h.OldCount++
		}
		if line.NewLine > 0 {
			h.NewCount++
		}
	}

	first := group[0]
	h.OldStart = first.OldStart + 1
	h.NewStart = first.NewStart + 1
	// An empty side starts at the line before the insertion point,
	// matching the unified-diff convention for zero-count ranges.
	if h.OldCount == 0 {
		h.OldStart = first.OldStart
	}
	if h.NewCount == 0 {
		h.NewStart = first.NewStart
	}
	return h
}

// appendOpLines expands one opcode into diff lines. Replace opcodes pair
// up overlapping lines as Modified, then emit the excess old lines as
// Deleted followed by the excess new lines as Added.
func appendOpLines(dst []DiffLine, op Opcode, old, new []string, spans SpanDiffer, equalStatus LineStatus) []DiffLine {
	switch op.Kind {
	case OpEqual:
		for k := 0; k < op.OldEnd-op.OldStart; k++ {
			dst = append(dst, DiffLine{
				Status:  equalStatus,
				Content: old[op.OldStart+k],
				OldLine: op.OldStart + k + 1,
				NewLine: op.NewStart + k + 1,
			})
		}

	case OpDelete:
		for i := op.OldStart; i < op.OldEnd; i++ {
			dst = append(dst, DiffLine{Status: Deleted, Content: old[i], OldLine: i + 1})
		}

	case OpInsert:
		for j := op.NewStart; j < op.NewEnd; j++ {
			dst = append(dst, DiffLine{Status: Added, Content: new[j], NewLine: j + 1})
		}

	case OpReplace:
		pairs := op.OldEnd - op.OldStart
		if n := op.NewEnd - op.NewStart; n < pairs {
			pairs = n
		}
		for k := 0; k < pairs; k++ {
			oldContent := old[op.OldStart+k]
			newContent := new[op.NewStart+k]
			var oldSpans, newSpans []Span
			if spans != nil {
				oldSpans, newSpans = spans.DiffLine(oldContent, newContent)
			}
			dst = append(dst, DiffLine{
				Status:     Modified,
				Content:    newContent,
				OldContent: oldContent,
				OldLine:    op.OldStart + k + 1,
				NewLine:    op.NewStart + k + 1,
				OldSpans:   oldSpans,
				NewSpans:   newSpans,
			})
		}
		for i := op.OldStart + pairs; i < op.OldEnd; i++ {
			dst = append(dst, DiffLine{Status: Deleted, Content: old[i], OldLine: i + 1})
		}
		for j := op.NewStart + pairs; j < op.NewEnd; j++ {
			dst = append(dst, DiffLine{Status: Added, Content: new[j], NewLine: j + 1})
		}
	}
	return dst
}
