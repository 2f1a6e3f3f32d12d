// Package errors defines error types for the lockbox client.
//
// This package provides structured error types for the failure scenarios of
// the remote command interface: connect failures, operations attempted while
// disconnected, I/O failures mid-exchange, and replies that cannot be decoded
// as the requested type. All error types support error unwrapping and can be
// checked using errors.Is and errors.As.
package errors
