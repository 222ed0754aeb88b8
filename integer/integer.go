package integer

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/decint/digits"
)

// Error classes.
var (
	// Error is the class of encoding and decoding failures.
	Error = errs.Class("integer")

	// InvalidDigit is the class of malformed decimal literals.
	InvalidDigit = errs.Class("invalid digit")

	// DivisionByZero is the class of divisions with a zero divisor.
	DivisionByZero = errs.Class("division by zero")
)

// Sign of an Int.
type Sign uint8

// Signs.
const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	}

	return "?"
}

// Int is an arbitrary precision signed integer.
type Int struct {
	sign Sign
	mag  digits.Digits
}

// newInt returns the canonical Int for sign and mag. mag must not be shared.
func newInt(sign Sign, mag digits.Digits) Int {
	mag = digits.Norm(mag)
	if digits.IsZero(mag) {
		return Int{sign: Positive, mag: digits.Zero()}
	}

	return Int{sign: sign, mag: mag}
}

// Zero returns 0.
func Zero() Int {
	return newInt(Positive, nil)
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v < 0 {
		// -v overflows for MinInt64, so negate after the conversion.
		return newInt(Negative, digits.FromUint64(uint64(-(v+1))+1))
	}

	return newInt(Positive, digits.FromUint64(uint64(v)))
}

// magnitude returns the magnitude of x treating the zero value as zero.
func (x Int) magnitude() digits.Digits {
	if len(x.mag) == 0 {
		return digits.Zero()
	}

	return x.mag
}

// Sign returns the sign of x. Zero is Positive.
func (x Int) Sign() Sign {
	if x.IsZero() {
		return Positive
	}

	return x.sign
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return digits.IsZero(x.mag)
}

// Digits returns a copy of the magnitude of x.
func (x Int) Digits() digits.Digits {
	return digits.Clone(x.magnitude())
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return newInt(Positive, digits.Clone(x.magnitude()))
}

// Neg returns -x.
func (x Int) Neg() Int {
	sign := Negative
	if x.Sign() == Negative {
		sign = Positive
	}

	return newInt(sign, digits.Clone(x.magnitude()))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()

	switch {
	case xs == Positive && ys == Negative:
		return 1
	case xs == Negative && ys == Positive:
		return -1
	case xs == Negative:
		return digits.Cmp(y.magnitude(), x.magnitude())
	}

	return digits.Cmp(x.magnitude(), y.magnitude())
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	xs, ys := x.Sign(), y.Sign()
	xm, ym := x.magnitude(), y.magnitude()

	if xs == ys {
		return newInt(xs, digits.Add(xm, ym))
	}

	switch digits.Cmp(xm, ym) {
	case 1:
		return newInt(xs, digits.Sub(xm, ym))
	case -1:
		return newInt(ys, digits.Sub(ym, xm))
	}

	return Zero()
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(productSign(x, y), digits.Mul(x.magnitude(), y.magnitude()))
}

// Quo returns x / y truncated toward zero. It fails with a DivisionByZero
// error if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	if y.IsZero() {
		return Zero(), DivisionByZero.New("%s / %s", x, y)
	}

	return newInt(productSign(x, y), digits.Quo(x.magnitude(), y.magnitude())), nil
}

// Rem returns the remainder of x / y with the sign of x, so that
// x == y * (x / y) + x % y. It fails with a DivisionByZero error if y is
// zero.
func (x Int) Rem(y Int) (Int, error) {
	if y.IsZero() {
		return Zero(), DivisionByZero.New("%s %% %s", x, y)
	}

	_, r := digits.QuoRem(x.magnitude(), y.magnitude())

	return newInt(x.Sign(), r), nil
}

// productSign is the sign of a product or quotient of x and y.
func productSign(x, y Int) Sign {
	if x.Sign() != y.Sign() {
		return Negative
	}

	return Positive
}
