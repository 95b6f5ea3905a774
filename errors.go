package chash

import "errors"

var (
	// ErrTableFull is returned by Add when the table already holds Cap items.
	// It is reported before any key comparison, so updates are refused too.
	ErrTableFull = errors.New("table full")

	// ErrChainExhausted is returned by Add when a collision chain cannot be
	// extended because no free slot remains.
	ErrChainExhausted = errors.New("chain exhausted")

	// ErrInvalidCapacity is returned by New for a capacity below 1.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrEmptyKey is returned by Add for a zero-length key.
	ErrEmptyKey = errors.New("empty key")

	// ErrNilValue is returned by Add for a nil value.
	ErrNilValue = errors.New("nil value")

	// ErrClosed is returned when operating on a closed table.
	ErrClosed = errors.New("table closed")
)
