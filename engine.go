package diffkit

import "unicode/utf8"

// DefaultContext is the number of equal lines included around each
// changed region when no explicit context is configured.
const DefaultContext = 3

// Engine computes diffs between two versions of a document. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	matcher  Matcher
	spans    SpanDiffer
	context  int
	maxLines int
	maxBytes int
}

// Option configures an Engine.
type Option func(*Engine)

// WithContext sets the number of equal lines surrounding each change.
// Negative values are ignored.
func WithContext(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.context = n
		}
	}
}

// WithMaxLines caps the combined line count of both inputs. Zero means
// no limit; the engine imposes none of its own.
func WithMaxLines(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxLines = n
		}
	}
}

// WithMaxBytes caps the combined byte length of both inputs. Zero means
// no limit.
func WithMaxBytes(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxBytes = n
		}
	}
}

// NewEngine creates an Engine using the given line matcher and intra-line
// span differ. matcher must not be nil; spans may be nil to skip
// intra-line span computation on modified lines.
func NewEngine(matcher Matcher, spans SpanDiffer, opts ...Option) *Engine {
	e := &Engine{
		matcher: matcher,
		spans:   spans,
		context: DefaultContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diff compares two documents and returns their changes grouped into
// context hunks. Identical inputs yield a result with zero hunks.
func (e *Engine) Diff(oldText, newText string) (*DiffResult, error) {
	oldLines, newLines, err := e.prepare(oldText, newText)
	if err != nil {
		return nil, err
	}
	opcodes := e.matcher.Match(oldLines, newLines)
	return &DiffResult{Hunks: BuildHunks(opcodes, oldLines, newLines, e.spans, e.context)}, nil
}

// Lines compares two documents and returns the full annotated line view,
// with equal lines marked Unchanged.
func (e *Engine) Lines(oldText, newText string) ([]DiffLine, error) {
	oldLines, newLines, err := e.prepare(oldText, newText)
	if err != nil {
		return nil, err
	}
	opcodes := e.matcher.Match(oldLines, newLines)
	return BuildLines(opcodes, oldLines, newLines, e.spans), nil
}

// Unified compares two documents and returns unified-diff text labeled
// with the given file names. Identical inputs yield an empty string.
func (e *Engine) Unified(oldText, newText, oldLabel, newLabel string) (string, error) {
	result, err := e.Diff(oldText, newText)
	if err != nil {
		return "", err
	}
	return FormatUnified(result.Hunks, oldLabel, newLabel), nil
}

// prepare validates both inputs and splits them into lines.
func (e *Engine) prepare(oldText, newText string) (oldLines, newLines []string, err error) {
	if !utf8.ValidString(oldText) {
		return nil, nil, InputError{Side: OldInput, Reason: "not valid UTF-8"}
	}
	if !utf8.ValidString(newText) {
		return nil, nil, InputError{Side: NewInput, Reason: "not valid UTF-8"}
	}
	if total := len(oldText) + len(newText); e.maxBytes > 0 && total > e.maxBytes {
		return nil, nil, LimitError{What: LimitBytes, Limit: e.maxBytes, Actual: total}
	}
	oldLines = SplitLines(oldText)
	newLines = SplitLines(newText)
	if total := len(oldLines) + len(newLines); e.maxLines > 0 && total > e.maxLines {
		return nil, nil, LimitError{What: LimitLines, Limit: e.maxLines, Actual: total}
	}
	return oldLines, newLines, nil
}
