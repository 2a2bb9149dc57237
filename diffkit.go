// Package diffkit provides domain types for computing and serializing
// line-level text diffs.
package diffkit

import "io"

// LineStatus classifies a single line in a diff.
type LineStatus int

// Line statuses.
const (
	Unchanged LineStatus = iota // Line is identical in both versions
	Added                       // Line exists only in the new version
	Deleted                     // Line exists only in the old version
	Modified                    // Line was changed between versions
	Context                     // Unchanged line included in a hunk for readability
)

// String returns the lowercase name of the status.
func (s LineStatus) String() string {
	switch s {
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Modified:
		return "modified"
	case Context:
		return "context"
	default:
		return "unchanged"
	}
}

// Span represents a portion of a line's text for intra-line highlighting.
// Concatenating a side's spans in order reconstructs that side's full line.
type Span struct {
	Text    string // The text content of this span
	Changed bool   // True if this portion differs between old/new versions
}

// DiffLine represents a single line in a diff.
//
// Line numbers are 1-based; 0 means the line has no number on that side.
// Deleted lines carry only OldLine, Added lines only NewLine, and
// Unchanged/Context/Modified lines carry both. For Modified lines Content
// holds the new version of the line and OldContent the old version;
// every other status stores its single content in Content.
type DiffLine struct {
	Status     LineStatus
	Content    string
	OldContent string // Old version of a Modified line, empty otherwise
	OldLine    int    // 0 if line is Added
	NewLine    int    // 0 if line is Deleted
	OldSpans   []Span // Intra-line spans for Modified lines (old side)
	NewSpans   []Span // Intra-line spans for Modified lines (new side)
}

// OldText returns the line's content as it appears in the old version.
// It is only meaningful when OldLine is set.
func (l DiffLine) OldText() string {
	if l.Status == Modified {
		return l.OldContent
	}
	return l.Content
}

// NewText returns the line's content as it appears in the new version.
// It is only meaningful when NewLine is set.
func (l DiffLine) NewText() string {
	return l.Content
}

// Hunk represents a contiguous block of changes plus surrounding context.
//
// OldStart/NewStart are 1-based. When a hunk has no lines on one side
// (a pure insertion or deletion), that side's start is the number of the
// line immediately before the change, which may be 0 at the top of the
// document.
type Hunk struct {
	OldStart int
	OldCount int // Number of lines in the hunk present in the old version
	NewStart int
	NewCount int // Number of lines in the hunk present in the new version
	Lines    []DiffLine
}

// Stats returns the number of added and deleted lines in the hunk.
// A modified line counts as both one addition and one deletion.
func (h Hunk) Stats() (added, deleted int) {
	for _, line := range h.Lines {
		switch line.Status {
		case Added:
			added++
		case Deleted:
			deleted++
		case Modified:
			added++
			deleted++
		}
	}
	return added, deleted
}

// DiffResult is the structured output of a diff computation. It is built
// fresh on every invocation and never mutated after construction.
type DiffResult struct {
	Hunks []Hunk
}

// OpKind identifies the kind of an alignment opcode.
type OpKind int

// Opcode kinds.
const (
	OpEqual   OpKind = iota // Lines match on both sides
	OpDelete                // Lines present only in the old sequence
	OpInsert                // Lines present only in the new sequence
	OpReplace               // Old lines replaced by new lines
)

// Opcode is a single alignment instruction produced by a Matcher.
// Ranges are half-open, 0-based indexes into the respective line slices.
// Equal and Replace opcodes span both sides; Delete spans only the old
// side (NewStart == NewEnd) and Insert only the new side.
type Opcode struct {
	Kind     OpKind
	OldStart int
	OldEnd   int
	NewStart int
	NewEnd   int
}

// Matcher aligns two line sequences into a minimal edit script.
type Matcher interface {
	// Match returns opcodes covering both sequences completely and in
	// order. Implementations must minimize inserted plus deleted lines;
	// naive positional comparison is not a valid implementation.
	Match(old, new []string) []Opcode
}

// SpanDiffer computes intra-line differences between two versions of a line.
type SpanDiffer interface {
	// DiffLine returns spans for both the old and new line, marking which
	// portions changed. Concatenating either side's spans must reproduce
	// that side's input exactly.
	DiffLine(old, new string) (oldSpans, newSpans []Span)
}

// Parser reads unified-diff text into a structured result.
type Parser interface {
	Parse(r io.Reader) (*DiffResult, error)
}
