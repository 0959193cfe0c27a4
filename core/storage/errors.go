package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials reports key material that cannot build a signing context.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConnection reports a region or endpoint the client cannot be built for.
	ErrConnection = errors.New("connection error")
	// ErrStore reports a storage or transport failure during an operation.
	ErrStore = errors.New("store error")
)

// InitError is returned when a client cannot be constructed.
// Kind is ErrInvalidCredentials or ErrConnection.
type InitError struct {
	Kind error
	Err  error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *InitError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StoreError wraps a failed storage call.
type StoreError struct {
	Op     string
	Bucket string
	Prefix string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Bucket, e.Prefix, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}

func invalidCredentials(format string, args ...any) error {
	return &InitError{Kind: ErrInvalidCredentials, Err: fmt.Errorf(format, args...)}
}

func connectionError(err error) error {
	return &InitError{Kind: ErrConnection, Err: err}
}
