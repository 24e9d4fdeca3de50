package psl

import (
	"errors"
	"fmt"
)

// Construction errors. Lookups never fail; only building a List can.
var (
	ErrEmptyLabel            = errors.New("rule contains an empty label")
	ErrExceptionAtFirstLabel = errors.New("exception rule has no suffix to except against")
	ErrInvalidRule           = errors.New("rule cannot be decomposed into labels")
	ErrInvalidList           = errors.New("list contains no usable rules")
	ErrListNotUtf8Encoded    = errors.New("list is not UTF-8 encoded")
)

// RuleError carries the offending rule text alongside the error kind so
// callers can report which line of the list broke the build.
type RuleError struct {
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
