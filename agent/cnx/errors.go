package cnx

import (
	"errors"
	"fmt"
)

var (
	ErrWalletNotOpen  = errors.New("wallet is not open")
	ErrPoolNotOpen    = errors.New("pool is not open")
	ErrNoSubmitterDID = errors.New("no submitter DID")
)

// Error is the error a Session returns. Op names the failed step, Err is the
// cause, usually from the Client.
type Error struct {
	Op  string
	Msg string
	Err error
}

func newError(op string, err error, format string, a ...any) *Error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, a...), Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
