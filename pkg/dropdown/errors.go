package dropdown

import (
	"errors"
	"fmt"
)

// ErrNoOptions is returned when a dropdown is built without options.
var ErrNoOptions = errors.New("dropdown needs at least one option")

// DuplicateOptionError reports a label that appears more than once. Labels
// identify options, so they must be unique.
type DuplicateOptionError struct {
	Label  string
	First  int
	Second int
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option %q at %d and %d", e.Label, e.First, e.Second)
}

// IndexError reports an option index outside the option list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("option index %d out of range [0, %d)", e.Index, e.Len)
}

// UnknownProfileError is returned by ParseProfile.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q (want %q or %q)", e.Name, ProfileHighlight, ProfileDirect)
}

// ValidationError collects construction failures
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors: %v", len(e.Errors), errors.Join(e.Errors...))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// Add adds an error to the validation error
func (e *ValidationError) Add(err error) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are validation errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks that options is non-empty and free of duplicate labels.
func Validate(options []string) error {
	verr := &ValidationError{}
	if len(options) == 0 {
		verr.Add(ErrNoOptions)
	}
	seen := make(map[string]int, len(options))
	for i, label := range options {
		if first, ok := seen[label]; ok {
			verr.Add(&DuplicateOptionError{Label: label, First: first, Second: i})
			continue
		}
		seen[label] = i
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
