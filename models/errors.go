package models

import "fmt"

// TransportError is returned when the releases could not be fetched, either
// because the request failed or because the server didn't answer with a 200.
type TransportError struct {
	err error
}

// NewTransportError returns a pointer to a new instance of TransportError.
func NewTransportError(message string, args ...interface{}) *TransportError {
	return &TransportError{
		err: fmt.Errorf(message, args...),
	}
}

func (err *TransportError) Error() string {
	return err.err.Error()
}

func (err *TransportError) Unwrap() error {
	return err.err
}

// DecodeError is returned when the response body isn't a JSON list of
// releases.
type DecodeError struct {
	err error
}

// NewDecodeError returns a pointer to a new instance of DecodeError.
func NewDecodeError(message string, args ...interface{}) *DecodeError {
	return &DecodeError{
		err: fmt.Errorf(message, args...),
	}
}

func (err *DecodeError) Error() string {
	return err.err.Error()
}

func (err *DecodeError) Unwrap() error {
	return err.err
}
