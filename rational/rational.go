// Package rational implements the Rational payload: a fraction of two 32-bit
// integers kept in lowest terms with a positive denominator.
//
// Arithmetic is carried out on 64-bit intermediates and reduced before it is
// narrowed back to 32 bits, so an operation only fails when the reduced
// result itself does not fit.
package rational

import (
	"errors"
	"math"
	"strconv"

	"github.com/theflywheel/chash/payload"
)

// Size is the fixed size of a Rational in bytes.
const Size = 8

var (
	// ErrZeroDenominator is returned when a fraction would have a zero denominator.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrOverflow is returned when a reduced result does not fit in 32 bits.
	ErrOverflow = errors.New("rational: overflow")
)

// Rational is the fraction Top/Bottom.
type Rational struct {
	Top    int32
	Bottom int32
}

// New returns the rational 1/1.
func New() *Rational {
	return &Rational{Top: 1, Bottom: 1}
}

// Of returns top/bottom in lowest terms.
func Of(top, bottom int32) (*Rational, error) {
	return reduce(int64(top), int64(bottom))
}

// Int returns the rational n/1.
func Int(n int32) *Rational {
	return &Rational{Top: n, Bottom: 1}
}

// Kind implements payload.Value.
func (r *Rational) Kind() payload.Kind { return payload.Rational }

// Size implements payload.Value.
func (r *Rational) Size() int { return Size }

// Clone implements payload.Value.
func (r *Rational) Clone() payload.Value {
	c := *r
	return &c
}

// Add returns r + o.
func (r *Rational) Add(o *Rational) (*Rational, error) {
	t1, b1, err := r.parts()
	if err != nil {
		return nil, err
	}
	t2, b2, err := o.parts()
	if err != nil {
		return nil, err
	}
	g := gcd(b1, b2)
	return reduce(t1*(b2/g)+t2*(b1/g), (b1/g)*b2)
}

// Sub returns r - o.
func (r *Rational) Sub(o *Rational) (*Rational, error) {
	t1, b1, err := r.parts()
	if err != nil {
		return nil, err
	}
	t2, b2, err := o.parts()
	if err != nil {
		return nil, err
	}
	g := gcd(b1, b2)
	return reduce(t1*(b2/g)-t2*(b1/g), (b1/g)*b2)
}

// Mul returns r * o.
func (r *Rational) Mul(o *Rational) (*Rational, error) {
	t1, b1, err := r.parts()
	if err != nil {
		return nil, err
	}
	t2, b2, err := o.parts()
	if err != nil {
		return nil, err
	}
	return reduce(t1*t2, b1*b2)
}

// Div returns r / o.
func (r *Rational) Div(o *Rational) (*Rational, error) {
	t1, b1, err := r.parts()
	if err != nil {
		return nil, err
	}
	t2, b2, err := o.parts()
	if err != nil {
		return nil, err
	}
	return reduce(t1*b2, b1*t2)
}

// Equal reports whether r and o denote the same number.
func (r *Rational) Equal(o *Rational) bool {
	return int64(r.Top)*int64(o.Bottom) == int64(o.Top)*int64(r.Bottom)
}

func (r *Rational) String() string {
	if r.Bottom == 1 {
		return strconv.FormatInt(int64(r.Top), 10)
	}
	return strconv.FormatInt(int64(r.Top), 10) + "/" + strconv.FormatInt(int64(r.Bottom), 10)
}

// parts returns r in lowest terms with a positive denominator, without
// narrowing to 32 bits.
func (r *Rational) parts() (int64, int64, error) {
	top, bottom := int64(r.Top), int64(r.Bottom)
	if bottom == 0 {
		return 0, 0, ErrZeroDenominator
	}
	if bottom < 0 {
		top, bottom = -top, -bottom
	}
	if g := gcd(abs(top), bottom); g > 1 {
		top, bottom = top/g, bottom/g
	}
	return top, bottom, nil
}

func reduce(top, bottom int64) (*Rational, error) {
	if bottom == 0 {
		return nil, ErrZeroDenominator
	}
	if bottom < 0 {
		top, bottom = -top, -bottom
	}
	if top == 0 {
		return &Rational{Top: 0, Bottom: 1}, nil
	}
	if g := gcd(abs(top), bottom); g > 1 {
		top, bottom = top/g, bottom/g
	}
	if top < math.MinInt32 || top > math.MaxInt32 || bottom > math.MaxInt32 {
		return nil, ErrOverflow
	}
	return &Rational{Top: int32(top), Bottom: int32(bottom)}, nil
}

func gcd(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
