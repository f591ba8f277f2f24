package osc

import "fmt"

// ParseError reports a construct the filter refuses to process,
// positioned by file and line.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Warning records a recoverable extraction problem, typically a
// bracket or parenthesis that never closes. The filter emits empty
// metadata for the construct and keeps going.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
}
