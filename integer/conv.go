package integer

import (
	"strings"

	"github.com/calebcase/decint/digits"
)

// splitSign returns the sign selected by an optional leading '+' or '-' and
// the remainder of s.
func splitSign(s string) (Sign, string) {
	if len(s) > 0 {
		switch s[0] {
		case '+':
			return Positive, s[1:]
		case '-':
			return Negative, s[1:]
		}
	}

	return Positive, s
}

// Parse returns the Int represented by s. Leading zeros are accepted and
// dropped. Any byte other than a single leading sign or a decimal digit fails
// with an InvalidDigit error, as does a literal without digits.
func Parse(s string) (Int, error) {
	sign, body := splitSign(s)
	offset := len(s) - len(body)

	if len(body) == 0 {
		return Zero(), InvalidDigit.New("%q: no digits", s)
	}

	mag := make(digits.Digits, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return Zero(), InvalidDigit.New("%q: unexpected %q at offset %d", s, c, offset+i)
		}

		if c == '0' && len(mag) == 0 {
			continue
		}

		mag = append(mag, c-'0')
	}

	return newInt(sign, mag), nil
}

// ParseLenient returns the Int represented by the digits in s. A leading
// '+' or '-' selects the sign, every other byte that is not a decimal digit
// is skipped and a literal without digits is zero.
func ParseLenient(s string) Int {
	sign, body := splitSign(s)

	mag := make(digits.Digits, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			continue
		}

		if c == '0' && len(mag) == 0 {
			continue
		}

		mag = append(mag, c-'0')
	}

	return newInt(sign, mag)
}

// MustParse is like Parse but panics if s is malformed.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// String returns the canonical decimal representation of x.
func (x Int) String() string {
	mag := x.magnitude()

	var b strings.Builder
	b.Grow(len(mag) + 1)

	if x.Sign() == Negative {
		b.WriteByte('-')
	}

	for _, d := range mag {
		b.WriteByte('0' + d)
	}

	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}
