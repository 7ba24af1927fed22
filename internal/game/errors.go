package game

import "errors"

var (
	// ErrInvalidAction is returned when an agent proposes an action that is
	// not legal for the current call amount and stack.
	ErrInvalidAction = errors.New("invalid action")
	// ErrChipAccounting is returned when a chip invariant is broken. It
	// indicates a bug in the engine, never a player mistake.
	ErrChipAccounting = errors.New("chip accounting violation")
	// ErrHandComplete is returned when Play is called twice on one hand
	ErrHandComplete = errors.New("hand already played")
)
