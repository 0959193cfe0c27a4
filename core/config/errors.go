package config

import (
	"errors"
	"fmt"
)

var (
	// ErrIO reports a filesystem or terminal failure while loading or persisting.
	ErrIO = errors.New("configuration io error")
	// ErrParse reports a configuration file that cannot be decoded or is invalid.
	ErrParse = errors.New("configuration parse error")
)

// Error is returned by Load. Kind is ErrIO or ErrParse.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &Error{Kind: ErrParse, Path: path, Err: err}
}
