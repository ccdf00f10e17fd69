package dna

import "fmt"

// invalidLengthError signals a generation request outside the allowed range.
type invalidLengthError struct{ n int }

func (e invalidLengthError) Error() string {
	return fmt.Sprintf("length must be between %d and %d, got %d", MinLength, MaxLength, e.n)
}

// ErrInvalidLength constructs an error for an out-of-range generation length.
func ErrInvalidLength(n int) error { return invalidLengthError{n: n} }

// IsInvalidLength reports whether err indicates an out-of-range length (400).
func IsInvalidLength(err error) bool {
	_, ok := err.(invalidLengthError)
	return ok
}

// emptySequenceError signals a validation request with no sequence content.
type emptySequenceError struct{}

func (emptySequenceError) Error() string { return "sequence cannot be empty" }

// ErrEmptySequence constructs an error for an empty validation input.
func ErrEmptySequence() error { return emptySequenceError{} }

// IsEmptySequence reports whether err indicates an empty sequence (400).
func IsEmptySequence(err error) bool {
	_, ok := err.(emptySequenceError)
	return ok
}

// unknownBaseError signals an info lookup for a letter outside the alphabet.
type unknownBaseError struct{ base string }

func (e unknownBaseError) Error() string { return "base '" + e.base + "' not found" }

// ErrUnknownBase constructs an error for an unrecognized base letter.
func ErrUnknownBase(base string) error { return unknownBaseError{base: base} }

// IsUnknownBase reports whether err indicates a missing base (404).
func IsUnknownBase(err error) bool {
	_, ok := err.(unknownBaseError)
	return ok
}
