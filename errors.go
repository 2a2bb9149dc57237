package diffkit

import "fmt"

// Input sides referenced by InputError.
const (
	OldInput = "old"
	NewInput = "new"
)

// InputError reports input that is not valid text.
type InputError struct {
	Side   string // Which input is invalid: OldInput or NewInput
	Reason string // Human-readable description of the problem
}

// Error implements the error interface.
func (e InputError) Error() string {
	return fmt.Sprintf("invalid %s input: %s", e.Side, e.Reason)
}

// Resource kinds referenced by LimitError.
const (
	LimitLines = "lines"
	LimitBytes = "bytes"
)

// LimitError reports input exceeding a caller-configured ceiling.
type LimitError struct {
	What   string // Which resource was exceeded: LimitLines or LimitBytes
	Limit  int    // The configured ceiling
	Actual int    // The observed value
}

// Error implements the error interface.
func (e LimitError) Error() string {
	return fmt.Sprintf("input exceeds configured limit: %d %s (limit %d)",
		e.Actual, e.What, e.Limit)
}
