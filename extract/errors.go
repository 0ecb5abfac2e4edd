package extract

import "fmt"

// ParseError indicates the byte stream is not a valid, openable PDF
// (corrupt, truncated or encrypted). The batch layer skips the file and
// continues; it is never fatal to a batch.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
