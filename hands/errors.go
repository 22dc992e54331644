package hands

import "errors"

var (
	// ErrUnknownHand indicates a label that is not one of the 169 matrix hands.
	ErrUnknownHand = errors.New("hands: unknown hand label")
	// ErrEmptyRange indicates range notation without any hand labels.
	ErrEmptyRange = errors.New("hands: range contains no hands")
)
