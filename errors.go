package indexfund

import "fmt"

// InputError reports a violated precondition of the allocation pipeline: an
// empty fund, a non-positive total market capitalization, an out-of-range cap
// or fee rate, a non-positive budget, or a ticker with an invalid price.
//
// It is raised synchronously at the point of violation and never alongside a
// partially computed result.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

// inputErrorf builds an InputError the way fmt.Errorf builds an error.
func inputErrorf(format string, args ...any) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}
