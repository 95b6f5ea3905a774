// Package random provides pure, stateless random draws for driving test and
// benchmark inputs.
//
// Every function is a deterministic function of its seed: the same seed
// always yields the same result, in and across runs. Draws are built on
// xxhash, so results are well distributed but carry no cryptographic
// guarantees.
package random

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrNegativeMax is returned by AtMost for a negative bound.
	ErrNegativeMax = errors.New("random: negative max")

	// ErrMinGreaterThanMax is returned by InRange when min > max.
	ErrMinGreaterThanMax = errors.New("random: min greater than max")
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Derive returns the n-th sub-seed of seed.
func Derive(seed, n uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], n)
	return xxhash.Sum64(buf[:])
}

// AtMost returns a uniformly distributed value in [0, max].
func AtMost(seed uint64, max int32) (int32, error) {
	if max < 0 {
		return 0, ErrNegativeMax
	}
	return InRange(seed, 0, max)
}

// InRange returns a uniformly distributed value in [min, max].
func InRange(seed uint64, min, max int32) (int32, error) {
	if min > max {
		return 0, ErrMinGreaterThanMax
	}
	if min == max {
		return max, nil
	}

	// Rejection sampling over the 32-bit draw space: values past the last
	// whole bin are drawn again with the next sub-seed.
	const setSize = uint64(math.MaxUint32) + 1
	span := uint64(int64(max)-int64(min)) + 1
	limit := setSize - setSize%span
	for attempt := uint64(0); ; attempt++ {
		x := Derive(seed, attempt) & math.MaxUint32
		if x < limit {
			return int32(int64(min) + int64(x%span)), nil
		}
	}
}

// Alphanumeric returns n characters drawn from [a-zA-Z0-9].
func Alphanumeric(seed uint64, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		idx, _ := InRange(Derive(seed, uint64(i)), 0, int32(len(charset)-1))
		out[i] = charset[idx]
	}
	return out
}
