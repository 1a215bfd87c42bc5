package bank

import "errors"

var (
	// ErrBadAmount is returned for a zero, negative or unparsable amount.
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrInsufficient is returned when a withdrawal exceeds the balance.
	ErrInsufficient = errors.New("insufficient balance")

	// ErrOverflow is returned when a deposit would push the balance past
	// what int64 cents can hold.
	ErrOverflow = errors.New("balance would overflow")
)
