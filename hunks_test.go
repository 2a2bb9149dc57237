package diffkit_test

import (
	"testing"

	"github.com/fwojciec/diffkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markerDiffer is a SpanDiffer stub that marks whole lines as changed,
// so tests can verify spans are threaded through without depending on a
// concrete differ.
type markerDiffer struct{}

func (markerDiffer) DiffLine(old, new string) (oldSpans, newSpans []diffkit.Span) {
	return []diffkit.Span{{Text: old, Changed: true}},
		[]diffkit.Span{{Text: new, Changed: true}}
}

func TestBuildLines_EqualLinesAreUnchanged(t *testing.T) {
	t.Parallel()

	old := []string{"a", "b"}
	new := []string{"a", "b"}
	opcodes := []diffkit.Opcode{
		{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 2, NewStart: 0, NewEnd: 2},
	}

	lines := diffkit.BuildLines(opcodes, old, new, nil)

	require.Len(t, lines, 2)
	assert.Equal(t, diffkit.DiffLine{Status: diffkit.Unchanged, Content: "a", OldLine: 1, NewLine: 1}, lines[0])
	assert.Equal(t, diffkit.DiffLine{Status: diffkit.Unchanged, Content: "b", OldLine: 2, NewLine: 2}, lines[1])
}

func TestBuildLines_ReplaceDecomposition(t *testing.T) {
	t.Parallel()

	t.Run("equal spans become modified pairs", func(t *testing.T) {
		t.Parallel()

		old := []string{"one", "two"}
		new := []string{"ONE", "TWO"}
		opcodes := []diffkit.Opcode{
			{Kind: diffkit.OpReplace, OldStart: 0, OldEnd: 2, NewStart: 0, NewEnd: 2},
		}

		lines := diffkit.BuildLines(opcodes, old, new, markerDiffer{})

		require.Len(t, lines, 2)
		for i, line := range lines {
			assert.Equal(t, diffkit.Modified, line.Status)
			assert.Equal(t, i+1, line.OldLine)
			assert.Equal(t, i+1, line.NewLine)
			assert.Equal(t, old[i], line.OldText())
			assert.Equal(t, new[i], line.NewText())
			assert.Equal(t, []diffkit.Span{{Text: old[i], Changed: true}}, line.OldSpans)
			assert.Equal(t, []diffkit.Span{{Text: new[i], Changed: true}}, line.NewSpans)
		}
	})

	t.Run("excess old lines trail as deleted", func(t *testing.T) {
		t.Parallel()

		old := []string{"one", "two", "three"}
		new := []string{"ONE"}
		opcodes := []diffkit.Opcode{
			{Kind: diffkit.OpReplace, OldStart: 0, OldEnd: 3, NewStart: 0, NewEnd: 1},
		}

		lines := diffkit.BuildLines(opcodes, old, new, nil)

		require.Len(t, lines, 3)
		assert.Equal(t, diffkit.Modified, lines[0].Status)
		assert.Equal(t, diffkit.DiffLine{Status: diffkit.Deleted, Content: "two", OldLine: 2}, lines[1])
		assert.Equal(t, diffkit.DiffLine{Status: diffkit.Deleted, Content: "three", OldLine: 3}, lines[2])
	})

	t.Run("excess new lines trail as added", func(t *testing.T) {
		t.Parallel()

		old := []string{"one"}
		new := []string{"ONE", "TWO", "THREE"}
		opcodes := []diffkit.Opcode{
			{Kind: diffkit.OpReplace, OldStart: 0, OldEnd: 1, NewStart: 0, NewEnd: 3},
		}

		lines := diffkit.BuildLines(opcodes, old, new, nil)

		require.Len(t, lines, 3)
		assert.Equal(t, diffkit.Modified, lines[0].Status)
		assert.Equal(t, diffkit.DiffLine{Status: diffkit.Added, Content: "TWO", NewLine: 2}, lines[1])
		assert.Equal(t, diffkit.DiffLine{Status: diffkit.Added, Content: "THREE", NewLine: 3}, lines[2])
	})
}

func TestBuildHunks_NoChangesNoHunks(t *testing.T) {
	t.Parallel()

	old := []string{"a", "b", "c"}
	opcodes := []diffkit.Opcode{
		{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 3, NewStart: 0, NewEnd: 3},
	}

	hunks := diffkit.BuildHunks(opcodes, old, old, nil, 3)

	assert.Empty(t, hunks)
}

func TestBuildHunks_ContextClamping(t *testing.T) {
	t.Parallel()

	// Ten equal lines, one replaced line, ten more equal lines.
	old := make([]string, 21)
	new := make([]string, 21)
	for i := range old {
		old[i] = "same"
		new[i] = "same"
	}
	old[10] = "before"
	new[10] = "after"
	opcodes := []diffkit.Opcode{
		{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 10, NewStart: 0, NewEnd: 10},
		{Kind: diffkit.OpReplace, OldStart: 10, OldEnd: 11, NewStart: 10, NewEnd: 11},
		{Kind: diffkit.OpEqual, OldStart: 11, OldEnd: 21, NewStart: 11, NewEnd: 21},
	}

	hunks := diffkit.BuildHunks(opcodes, old, new, nil, 3)

	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 8, h.OldStart)
	assert.Equal(t, 7, h.OldCount)
	assert.Equal(t, 8, h.NewStart)
	assert.Equal(t, 7, h.NewCount)
	require.Len(t, h.Lines, 7)
	assert.Equal(t, diffkit.Context, h.Lines[0].Status)
	assert.Equal(t, diffkit.Modified, h.Lines[3].Status)
	assert.Equal(t, diffkit.Context, h.Lines[6].Status)
}

func TestBuildHunks_Merging(t *testing.T) {
	t.Parallel()

	t.Run("gap of exactly 2*context merges into one hunk", func(t *testing.T) {
		t.Parallel()

		old := []string{"A", "x", "B", "C", "y", "D"}
		new := []string{"A", "X", "B", "C", "Y", "D"}
		opcodes := []diffkit.Opcode{
			{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 1, NewStart: 0, NewEnd: 1},
			{Kind: diffkit.OpReplace, OldStart: 1, OldEnd: 2, NewStart: 1, NewEnd: 2},
			{Kind: diffkit.OpEqual, OldStart: 2, OldEnd: 4, NewStart: 2, NewEnd: 4},
			{Kind: diffkit.OpReplace, OldStart: 4, OldEnd: 5, NewStart: 4, NewEnd: 5},
			{Kind: diffkit.OpEqual, OldStart: 5, OldEnd: 6, NewStart: 5, NewEnd: 6},
		}

		hunks := diffkit.BuildHunks(opcodes, old, new, nil, 1)

		require.Len(t, hunks, 1)
		h := hunks[0]
		assert.Equal(t, 1, h.OldStart)
		assert.Equal(t, 6, h.OldCount)
		assert.Equal(t, 1, h.NewStart)
		assert.Equal(t, 6, h.NewCount)
	})

	t.Run("gap of 2*context+1 stays two hunks", func(t *testing.T) {
		t.Parallel()

		old := []string{"A", "x", "B", "C", "D", "y", "E"}
		new := []string{"A", "X", "B", "C", "D", "Y", "E"}
		opcodes := []diffkit.Opcode{
			{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 1, NewStart: 0, NewEnd: 1},
			{Kind: diffkit.OpReplace, OldStart: 1, OldEnd: 2, NewStart: 1, NewEnd: 2},
			{Kind: diffkit.OpEqual, OldStart: 2, OldEnd: 5, NewStart: 2, NewEnd: 5},
			{Kind: diffkit.OpReplace, OldStart: 5, OldEnd: 6, NewStart: 5, NewEnd: 6},
			{Kind: diffkit.OpEqual, OldStart: 6, OldEnd: 7, NewStart: 6, NewEnd: 7},
		}

		hunks := diffkit.BuildHunks(opcodes, old, new, nil, 1)

		require.Len(t, hunks, 2)
		assert.Equal(t, 1, hunks[0].OldStart)
		assert.Equal(t, 3, hunks[0].OldCount)
		assert.Equal(t, 5, hunks[1].OldStart)
		assert.Equal(t, 3, hunks[1].OldCount)
	})
}

func TestBuildHunks_PureInsertionIntoEmptyDocument(t *testing.T) {
	t.Parallel()

	new := []string{"a", "b", "c"}
	opcodes := []diffkit.Opcode{
		{Kind: diffkit.OpInsert, OldStart: 0, OldEnd: 0, NewStart: 0, NewEnd: 3},
	}

	hunks := diffkit.BuildHunks(opcodes, nil, new, nil, 3)

	require.Len(t, hunks, 1)
	h := hunks[0]
	// The empty side starts at the line before the insertion point.
	assert.Equal(t, 0, h.OldStart)
	assert.Equal(t, 0, h.OldCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 3, h.NewCount)
}

func TestBuildHunks_CountsMatchLineNumbers(t *testing.T) {
	t.Parallel()

	old := []string{"a", "b", "c", "d"}
	new := []string{"a", "x", "y", "c", "d", "z"}
	opcodes := []diffkit.Opcode{
		{Kind: diffkit.OpEqual, OldStart: 0, OldEnd: 1, NewStart: 0, NewEnd: 1},
		{Kind: diffkit.OpReplace, OldStart: 1, OldEnd: 2, NewStart: 1, NewEnd: 3},
		{Kind: diffkit.OpEqual, OldStart: 2, OldEnd: 4, NewStart: 3, NewEnd: 5},
		{Kind: diffkit.OpInsert, OldStart: 4, OldEnd: 4, NewStart: 5, NewEnd: 6},
	}

	hunks := diffkit.BuildHunks(opcodes, old, new, nil, 3)

	require.Len(t, hunks, 1)
	h := hunks[0]

	oldLines, newLines := 0, 0
	for _, line := range h.Lines {
		if line.OldLine > 0 {
			oldLines++
		}
		if line.NewLine > 0 {
			newLines++
		}
	}
	assert.Equal(t, h.OldCount, oldLines)
	assert.Equal(t, h.NewCount, newLines)
	assert.Equal(t, h.OldStart, h.Lines[0].OldLine)
	assert.Equal(t, h.NewStart, h.Lines[0].NewLine)
}
