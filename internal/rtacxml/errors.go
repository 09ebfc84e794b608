package rtacxml

import "fmt"

// Error codes for parse failures.
const (
	ErrCodeMalformed = "E_MALFORMED_XML"
	ErrCodeEmpty     = "E_EMPTY_DOCUMENT"
)

// ParseError reports a single-document parse failure. Only malformed
// XML produces one; every structural surprise short of that degrades to
// empty fields or silent omission instead.
type ParseError struct {
	Code string
	File string
	Err  error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
