package errors

import "fmt"

// Values is the type used to specify arguments for a CRTError.
type Values []interface{}

// CRTError is the error type returned by the crt package's construction
// functions (Init, Resize).
type CRTError struct {
	Errno  Errno
	Values Values
}

// New creates a CRTError of the given category.
func New(errno Errno, values ...interface{}) CRTError {
	return CRTError{Errno: errno, Values: values}
}

func (er CRTError) Error() string {
	return fmt.Sprintf(messages[er.Errno], er.Values...)
}
