package terminal

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be a non-negative dollar value")
	ErrDeviceNotPaired  = errors.New("no terminal device is paired")
	ErrUnauthenticated  = errors.New("invalid operator password")
	ErrProcessorRequest = errors.New("payment processor request failed")
)
