package game

import "errors"

var (
	// ErrMalformedMove means the move string could not be parsed at all.
	ErrMalformedMove = errors.New("malformed move")
	// ErrIllegalMove means the move parsed but is not in the legal set.
	ErrIllegalMove = errors.New("illegal move")
)
