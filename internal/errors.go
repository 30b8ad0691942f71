package internal

import "fmt"

type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

// ErrMissingParam is returned by constructors handed a nil dependency
const ErrMissingParam BaseError = "missing parameter"

// ErrorWrapper tags constructor failures with the parameter that caused them
type ErrorWrapper struct {
	Err     error
	Message string
}

func (e *ErrorWrapper) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ErrorWrapper) Unwrap() error {
	return e.Err
}

func NewMissingParamError(param string) error {
	return &ErrorWrapper{
		Err:     ErrMissingParam,
		Message: param,
	}
}
