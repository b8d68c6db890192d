package domain

import (
	"errors"
	"fmt"
)

// FetchFailureMessage is the only text shown to the user when the data source fails.
const FetchFailureMessage = "I'm sorry, we were unable to process your request at this time, please try again later."

// ErrFetchFailed is the root of every data source failure.
var ErrFetchFailed = errors.New("fetch failed")

// ErrUnknownResource is returned when a collection kind is not supported by a source.
var ErrUnknownResource = errors.New("unknown resource")

// ErrNothingSelected is returned when a level requires a selection that is missing.
var ErrNothingSelected = errors.New("nothing selected")

// FetchError describes a failed collection fetch.
type FetchError struct {
	Kind   ResourceKind
	Filter Filter
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Kind, e.Filter, e.Err)
}

// Unwrap exposes both the cause and ErrFetchFailed to errors.Is.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}

// ValidationError is a rejected menu answer. Message is shown to the user as-is.
type ValidationError struct {
	Level   Level
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
