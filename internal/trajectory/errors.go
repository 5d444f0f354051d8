package trajectory

import "fmt"

// FormatError reports a log row that does not match the fixed column layout.
type FormatError struct {
	Path   string
	Line   int
	Column int // 0 when the whole row is at fault
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d: column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError reports a directory or file that could not be read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
