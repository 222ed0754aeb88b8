package digits

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Both arguments must be canonical. Without leading zeros the longer
// sequence is the larger one, and sequences of equal length order the same
// way their digits do.
func Cmp(x, y Digits) int {
	x, y = canon(x), canon(y)

	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}

// Add returns x + y.
func Add(x, y Digits) Digits {
	x, y = canon(x), canon(y)
	if len(x) < len(y) {
		x, y = y, x
	}

	// One extra column for the final carry.
	z := make(Digits, len(x)+1)

	var carry uint8
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		s := x[i] + carry
		if j >= 0 {
			s += y[j]
			j--
		}

		z[i+1] = s % 10
		carry = s / 10
	}
	z[0] = carry

	return Norm(z)
}

// Sub returns x - y. It panics if x < y.
func Sub(x, y Digits) Digits {
	x, y = canon(x), canon(y)
	if Cmp(x, y) < 0 {
		panic("digits: subtraction underflow")
	}

	z := make(Digits, len(x))

	var borrow uint8
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		d := borrow
		if j >= 0 {
			d += y[j]
			j--
		}

		if x[i] < d {
			z[i] = x[i] + 10 - d
			borrow = 1
		} else {
			z[i] = x[i] - d
			borrow = 0
		}
	}

	return Norm(z)
}

// Half returns x / 2 rounded down.
func Half(x Digits) Digits {
	q, _ := HalfRem(x)

	return q
}

// HalfRem returns x / 2 rounded down and the remainder x % 2.
func HalfRem(x Digits) (q Digits, r uint8) {
	x = canon(x)
	z := make(Digits, len(x))

	for i, d := range x {
		c := r*10 + d
		z[i] = c / 2
		r = c % 2
	}

	return Norm(z), r
}

// Mul returns x * y.
func Mul(x, y Digits) Digits {
	x, y = canon(x), canon(y)
	if IsZero(x) || IsZero(y) {
		return Zero()
	}

	z := Zero()
	for i := 0; i < len(y); i++ {
		d := y[len(y)-1-i]
		if d == 0 {
			continue
		}

		z = Add(z, shl(mulDigit(x, d), i))
	}

	return z
}

// mulDigit returns x * d for a single digit d.
func mulDigit(x Digits, d uint8) Digits {
	z := make(Digits, len(x)+1)

	var carry uint8
	for i := len(x) - 1; i >= 0; i-- {
		p := x[i]*d + carry
		z[i+1] = p % 10
		carry = p / 10
	}
	z[0] = carry

	return Norm(z)
}

// shl returns x * 10^n.
func shl(x Digits, n int) Digits {
	if n == 0 || IsZero(x) {
		return x
	}

	z := make(Digits, len(x)+n)
	copy(z, x)

	return z
}

// Quo returns x / y rounded down. It panics if y is zero.
func Quo(x, y Digits) Digits {
	x, y = canon(x), canon(y)
	if IsZero(y) {
		panic("digits: division by zero")
	}

	if Cmp(x, y) < 0 {
		return Zero()
	}

	// x >= y so the quotient is at least one.
	left, right := One(), Clone(x)
	for Cmp(left, right) < 0 {
		middle := Half(Add(Add(left, right), One()))

		switch Cmp(Mul(middle, y), x) {
		case 0:
			return middle
		case -1:
			left = middle
		default:
			right = Sub(middle, One())
		}
	}

	return left
}

// QuoRem returns x / y rounded down and the remainder x - y * (x / y). It
// panics if y is zero.
func QuoRem(x, y Digits) (q, r Digits) {
	q = Quo(x, y)
	r = Sub(canon(x), Mul(q, y))

	return q, r
}
