package integer

import (
	"github.com/calebcase/decint/digits"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	// Bits are collected least significant first. The sign takes bit 0.
	bits := []uint8{0}
	if x.Sign() == Negative {
		bits[0] = 1
	}

	mag := x.magnitude()
	for !digits.IsZero(mag) {
		var r uint8
		mag, r = digits.HalfRem(mag)
		bits = append(bits, r)
	}

	data = make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		data[len(data)-1-i/8] |= b << (i % 8)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Empty data is zero.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		*x = Zero()

		return nil
	}

	mag := digits.Zero()
	one := digits.One()

	// Every bit but the last belongs to the magnitude.
	n := len(data)*8 - 1
	for i := 0; i < n; i++ {
		mag = digits.Add(mag, mag)
		if data[i/8]>>(7-i%8)&1 == 1 {
			mag = digits.Add(mag, one)
		}
	}

	sign := Positive
	if data[len(data)-1]&1 == 1 {
		sign = Negative
	}

	*x = newInt(sign, mag)

	return nil
}
