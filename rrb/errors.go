package rrb

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rrb: invalid configuration")
	// ErrInvalidArgument signals an argument which is not acceptable as input,
	// e.g. a missing sequence.
	ErrInvalidArgument = errors.New("rrb: invalid argument")
	// ErrIndexOutOfRange signals an invalid positional index.
	ErrIndexOutOfRange = errors.New("rrb: index out of range")
	// ErrIncompatibleConfig signals that two states use different branch factors.
	ErrIncompatibleConfig = errors.New("rrb: incompatible configuration")
	// ErrCorrupted is reported by Check for violated structural invariants.
	ErrCorrupted = errors.New("rrb: corrupted tree")
)
