package omaha

import "errors"

var (
	ErrHandEnded        = errors.New("hand already ended")
	ErrIllegalOperation = errors.New("operation not legal in current state")
)
