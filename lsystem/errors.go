package lsystem

import "errors"

var (
	// Input validation errors
	ErrEmptyAxiom         = errors.New("lsystem: empty axiom")
	ErrNegativeIterations = errors.New("lsystem: iterations must be >= 0")

	// Growth safety errors
	ErrExpansionTooLarge = errors.New("lsystem: expansion would exceed the symbol ceiling")
)
