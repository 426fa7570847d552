package errmsg

import "errors"

// TermError is a terminal signal: a recoverable condition surfaced to
// the user as a transient display message. None of them are fatal and
// none propagate beyond the session that raised them.
type TermError struct {
	Text string
	Err  error
}

func NewTermError(text string, err error) TermError {
	return TermError{Text: text, Err: err}
}

func (e TermError) Error() string {
	return e.Err.Error()
}

func (e TermError) Unwrap() error {
	return e.Err
}

var (
	ErrInputRejected = NewTermError(
		"input rejected",
		errors.New("input rejected"),
	)

	ErrInvalidPin = NewTermError(
		"pin invalid",
		errors.New("pin rejected by verification service"),
	)

	ErrInvalidAmount = NewTermError(
		"amount invalid",
		errors.New("amount is not a valid positive number"),
	)

	ErrInsufficientBalance = NewTermError(
		"insufficient balance",
		errors.New("amount exceeds available balance"),
	)

	ErrNonDivisibleAmount = NewTermError(
		"enter multiple of 5",
		errors.New("amount is not a multiple of the smallest note"),
	)

	ErrInsufficientCash = NewTermError(
		"terminal out of cash",
		errors.New("amount exceeds cash in the terminal"),
	)

	ErrDenominationMismatch = NewTermError(
		"cannot compose amount",
		errors.New("amount cannot be composed from remaining notes"),
	)
)
