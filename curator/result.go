// Package curator provides the session coordinator for interactive content
// generation: session state, the generation orchestrator, and the command
// dispatcher.
package curator

import "fmt"

// Result is the outcome of a generation operation: success with non-empty
// text, or failure with a human-readable message. Never both.
type Result struct {
	Text string
	Err  string
}

// Success creates a successful result.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure creates a failed result with a formatted message.
func Failure(format string, args ...interface{}) Result {
	return Result{Err: fmt.Sprintf(format, args...)}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Err == ""
}
