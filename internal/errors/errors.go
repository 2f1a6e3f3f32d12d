package errors

import (
	"errors"
	"fmt"
)

// LockboxError is the base interface for all client errors.
type LockboxError interface {
	error
	IsLockboxError() bool
}

// Compile-time verification that all error types implement LockboxError.
var (
	_ LockboxError = (*ConnectionError)(nil)
	_ LockboxError = (*WriteError)(nil)
	_ LockboxError = (*QueryError)(nil)
	_ LockboxError = (*InvalidResponseError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotConnected indicates an operation was attempted while the session
	// is disconnected. No I/O is attempted when this is returned.
	ErrNotConnected = errors.New("lockbox: not connected")

	// ErrAlreadyConnected indicates Connect was called on a connected session.
	ErrAlreadyConnected = errors.New("lockbox: already connected")

	// ErrInvalidChannel indicates a waveform channel outside the instrument's
	// configured channel count.
	ErrInvalidChannel = errors.New("lockbox: invalid waveform channel")
)

// ConnectionError indicates that establishing the instrument connection
// failed (refused, unreachable, or timed out).
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsLockboxError implements LockboxError.
func (e *ConnectionError) IsLockboxError() bool { return true }

// WriteError indicates an I/O failure while writing a command.
type WriteError struct {
	Command string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Command, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsLockboxError implements LockboxError.
func (e *WriteError) IsLockboxError() bool { return true }

// QueryError indicates an I/O failure while waiting for or reading a reply.
type QueryError struct {
	Command string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsLockboxError implements LockboxError.
func (e *QueryError) IsLockboxError() bool { return true }

// InvalidResponseError indicates a reply was received but could not be
// decoded as the requested type. Text preserves the offending reply for
// diagnostics.
type InvalidResponseError struct {
	Text string
	Err  error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response %q: %v", e.Text, e.Err)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// IsLockboxError implements LockboxError.
func (e *InvalidResponseError) IsLockboxError() bool { return true }
