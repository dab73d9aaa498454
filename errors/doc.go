// Package errors is a helper package for the error type used by the crt
// package. It defines the CRTError type, an implementation of the error
// interface, that normalises construction-time failure messages.
//
// The hot path (Modulate/Demodulate) never returns an error: an unsupported
// pixel format or an unacquired sync position are recoverable conditions
// handled locally, not errors. Errors are reserved for construction-time
// mistakes — the one place a caller can pass a configuration this package
// cannot run with at all.
package errors
