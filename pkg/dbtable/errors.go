package dbtable

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an unknown input format.
var ErrInvalidFormat = errors.New("invalid input format")

// LoadError represents an error while loading a table.
type LoadError struct {
	Path  string
	Stage string // "options", "open", "parse"
	Err   error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("load error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
