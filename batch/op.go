package batch

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/decint/integer"
)

// Error is the class of batch failures.
var Error = errs.Class("batch")

// Op is a binary operator.
type Op uint8

// Operators.
const (
	Invalid Op = iota
	Add
	Sub
	Mul
	Quo
)

var symbols = [...]string{
	Invalid: "?",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Quo:     "/",
}

func (o Op) String() string {
	if int(o) < len(symbols) {
		return symbols[o]
	}

	return symbols[Invalid]
}

// ParseOp returns the operator for symbol.
func ParseOp(symbol string) (Op, error) {
	for o, s := range symbols {
		if Op(o) != Invalid && s == symbol {
			return Op(o), nil
		}
	}

	return Invalid, Error.New("unknown operator %q", symbol)
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if o == Invalid || int(o) >= len(symbols) {
		return nil, Error.New("invalid operator %d", uint8(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) (err error) {
	*o, err = ParseOp(string(text))

	return err
}

// Apply returns x o y.
func (o Op) Apply(x, y integer.Int) (integer.Int, error) {
	switch o {
	case Add:
		return x.Add(y), nil
	case Sub:
		return x.Sub(y), nil
	case Mul:
		return x.Mul(y), nil
	case Quo:
		return x.Quo(y)
	}

	return integer.Zero(), Error.New("invalid operator %d", uint8(o))
}
