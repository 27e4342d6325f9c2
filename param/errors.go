package param

import (
	"errors"
	"fmt"
)

// Errors that may be matched with errors.Is against the errors returned by
// ParseParameters, Parse, Tokenize, and Assemble.
var (
	// ErrMalformedInput matches any *MalformedInputError.
	ErrMalformedInput = errors.New("malformed parameters string")

	// ErrMalformedExtendedValue matches any *MalformedExtendedValueError.
	ErrMalformedExtendedValue = errors.New("malformed extended parameter value")

	// ErrContinuation matches any *ContinuationError.
	ErrContinuation = errors.New("incomplete parameter continuation")

	// ErrBadPrimaryValue is returned by Parse when the value before the first
	// semicolon is not a token or a type/subtype pair of tokens.
	ErrBadPrimaryValue = errors.New("malformed primary value")
)

// MalformedInputError is returned when the parameters string cannot be broken
// up completely into name=value units. No partial result accompanies it.
type MalformedInputError struct {
	Input  string // the trimmed parameters string
	Offset int    // byte offset into Input where matching failed
	Reason string // short description of what was expected
}

// Error returns the error message.
func (err *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed parameters string at offset %d: %s", err.Offset, err.Reason)
}

// Is makes errors.Is(err, ErrMalformedInput) true.
func (err *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// MalformedExtendedValueError is returned when an extended (name*=) value or
// the first section of an extended continuation does not have the
// charset'language'value form.
type MalformedExtendedValueError struct {
	Name  string // the full parameter name, markers included
	Value string // the raw value
}

// Error returns the error message.
func (err *MalformedExtendedValueError) Error() string {
	return fmt.Sprintf("parameter %q: extended value %q is missing charset'language' prefix", err.Name, err.Value)
}

// Is makes errors.Is(err, ErrMalformedExtendedValue) true.
func (err *MalformedExtendedValueError) Is(target error) bool {
	return target == ErrMalformedExtendedValue
}

// ContinuationError is only returned when WithStrictContinuations is in effect.
// It reports the first section number missing from a continuation.
type ContinuationError struct {
	Name    string // the base parameter name
	Missing int    // the first missing section number
}

// Error returns the error message.
func (err *ContinuationError) Error() string {
	return fmt.Sprintf("parameter %q: continuation section %d is missing", err.Name, err.Missing)
}

// Is makes errors.Is(err, ErrContinuation) true.
func (err *ContinuationError) Is(target error) bool {
	return target == ErrContinuation
}
