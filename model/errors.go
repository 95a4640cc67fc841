package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading a model. Use errors.Is() to tell them apart.
var (
	// ErrModelNotFound indicates no installed package answers to the identifier.
	ErrModelNotFound = errors.New("model not found")

	// ErrLoadFailure indicates the package was found but could not be read,
	// validated or run.
	ErrLoadFailure = errors.New("model failed to load")
)

// LoadError carries the identifier and the kind of failure.
type LoadError struct {
	Name string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: %q: %v", e.Kind, e.Name, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func notFound(name string, err error) error {
	return &LoadError{Name: name, Kind: ErrModelNotFound, Err: err}
}

func loadFailure(name string, err error) error {
	return &LoadError{Name: name, Kind: ErrLoadFailure, Err: err}
}
