// Package payload defines the tagged values a chash table can bind to a key.
package payload

import "fmt"

// Kind tags the concrete type of a Value.
type Kind uint8

const (
	// Matrix marks a value backed by *matrix.Matrix.
	Matrix Kind = iota
	// Rational marks a value backed by *rational.Rational.
	Rational
)

func (k Kind) String() string {
	switch k {
	case Matrix:
		return "matrix"
	case Rational:
		return "rational"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a payload that a table can own.
//
// Clone must return a non-nil copy that shares no mutable state with the
// receiver. Tables reject values whose Clone returns nil.
// Size reports the fixed header size of the concrete type in bytes.
type Value interface {
	Kind() Kind
	Size() int
	Clone() Value
}

// Releaser is implemented by values holding resources that should be dropped
// when the owning table lets go of them.
type Releaser interface {
	Release()
}
