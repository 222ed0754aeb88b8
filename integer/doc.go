// Package integer provides arbitrary precision signed decimal integers.
//
// An Int is a sign and a magnitude. The magnitude is a canonical digit
// sequence from package digits and zero is always positive:
//
//	-1024 = Int{sign: Negative, mag: {1, 0, 2, 4}}
//	    0 = Int{sign: Positive, mag: {0}}
//
// Values are immutable. Every operation returns a new Int that owns its
// digits, so an Int may be shared between goroutines freely. The zero value
// is ready to use and equals 0.
//
// # Text
//
// The text form is an optional sign followed by decimal digits:
//
//	[+-]?[0-9]+
//
// Parse rejects anything else with an InvalidDigit error. ParseLenient
// honours a leading sign, skips every other non digit and reads an empty
// digit run as zero. String always produces the canonical form: no leading
// zeros, no sign on zero, no plus sign.
//
// # Binary
//
// MarshalBinary lays the magnitude out big-endian, shifted left by one bit,
// with the sign in the lowest bit (aka zigzag). Zero is a single zero byte:
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | +1
//	| 0 . 0 . 0 . 0 . 0 . 0 . 1 | 1 | -1
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 | +127
//	|---------------|---------------|
//
// # Blocks
//
// Encoder writes each value as a single control block whose prefix tells the
// Decoder how many bytes follow:
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                   |
//	|---------------|---------------||----------------|-----------------------------------|
//	| 1 |                           || Data           | 7 bits inline                     |
//	| 0 . 1 |                       || Data Size      | 6 bits size; up to 64 bytes       |
//	| 0 . 0 . 1 |                   || Data + 1       | 5 bits inline plus 1 byte         |
//	| 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits inline plus 2 bytes        |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 3 bits size of size; up to 8 bytes|
//	|---------------|---------------||----------------|-----------------------------------|
//
// Sizes are stored minus one. The payload of every block is the binary form
// above.
package integer
