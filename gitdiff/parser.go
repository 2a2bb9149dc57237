// Package gitdiff implements unified-diff parsing using
// bluekeyes/go-gitdiff. It is the inverse of diffkit.FormatUnified for
// interchange with external tooling: hunks parsed from text carry
// Context, Added and Deleted lines only, since the textual format has no
// notion of a modified pair.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffkit"
)

// Compile-time interface verification.
var _ diffkit.Parser = (*Parser)(nil)

// Parser parses unified-diff text using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads unified-diff text describing a single document and returns
// the structured result. Hunks from multiple file sections, if present,
// are flattened in order.
func (p *Parser) Parse(r io.Reader) (*diffkit.DiffResult, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &diffkit.DiffResult{}
	for _, f := range files {
		for _, frag := range f.TextFragments {
			result.Hunks = append(result.Hunks, convertFragment(frag))
		}
	}
	return result, nil
}

func convertFragment(frag *gitdiff.TextFragment) diffkit.Hunk {
	hunk := diffkit.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Lines:    make([]diffkit.DiffLine, 0, len(frag.Lines)),
	}

	oldNum := int(frag.OldPosition)
	newNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		// go-gitdiff keeps the trailing newline on line content.
		line := diffkit.DiffLine{Content: strings.TrimSuffix(l.Line, "\n")}

		switch l.Op {
		case gitdiff.OpContext:
			line.Status = diffkit.Context
			line.OldLine = oldNum
			line.NewLine = newNum
			oldNum++
			newNum++
		case gitdiff.OpAdd:
			line.Status = diffkit.Added
			line.NewLine = newNum
			newNum++
		case gitdiff.OpDelete:
			line.Status = diffkit.Deleted
			line.OldLine = oldNum
			oldNum++
		}

		hunk.Lines = append(hunk.Lines, line)
	}
	return hunk
}
