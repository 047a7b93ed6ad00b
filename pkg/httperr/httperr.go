package httperr

import "errors"

// InternalError is a server-side failure with a message that is safe to show to clients.
type InternalError struct {
	Public string
	Err    error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Public
	}
	return e.Public + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

// Details is the message of the underlying error, or "" when there is none.
func (e *InternalError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func NewInternal(public string, err error) error { return &InternalError{Public: public, Err: err} }

func AsInternal(err error) (*InternalError, bool) {
	return errors.AsType[*InternalError](err)
}
