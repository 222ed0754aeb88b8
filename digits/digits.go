package digits

import (
	"strings"
)

// Digits is an unsigned integer stored as decimal digits, most significant
// first.
type Digits []uint8

// Zero returns the canonical zero.
func Zero() Digits {
	return Digits{0}
}

// One returns the canonical one.
func One() Digits {
	return Digits{1}
}

// FromUint64 returns the digits of v.
func FromUint64(v uint64) Digits {
	if v == 0 {
		return Zero()
	}

	var buf [20]uint8
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = uint8(v % 10)
		v /= 10
	}

	return Clone(buf[i:])
}

// Clone returns a copy of x that shares no memory with it.
func Clone(x Digits) Digits {
	x = canon(x)
	z := make(Digits, len(x))
	copy(z, x)

	return z
}

// Norm returns x with leading zeros removed. The result may share memory
// with x.
func Norm(x Digits) Digits {
	i := 0
	for i < len(x)-1 && x[i] == 0 {
		i++
	}

	if i == len(x) {
		return Zero()
	}

	return x[i:]
}

// IsZero reports whether x is zero.
func IsZero(x Digits) bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}

	return true
}

// Valid reports whether x is canonical and every element is a decimal digit.
func Valid(x Digits) bool {
	if len(x) == 0 {
		return false
	}

	if x[0] == 0 && len(x) > 1 {
		return false
	}

	for _, d := range x {
		if d > 9 {
			return false
		}
	}

	return true
}

// String returns the decimal representation of x.
func (x Digits) String() string {
	x = canon(x)

	var b strings.Builder
	b.Grow(len(x))
	for _, d := range x {
		b.WriteByte('0' + d)
	}

	return b.String()
}

// canon maps the empty sequence to zero.
func canon(x Digits) Digits {
	if len(x) == 0 {
		return Zero()
	}

	return x
}
