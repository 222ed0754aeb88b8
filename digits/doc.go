// Package digits provides unsigned arithmetic on base 10 digit sequences.
//
// A Digits value holds one decimal digit (0-9) per element, most significant
// digit first:
//
//	1024 = Digits{1, 0, 2, 4}
//
// A sequence is canonical when it is non-empty and has no leading zero,
// except for zero itself which is exactly Digits{0}. Every function in this
// package returns canonical sequences and never modifies its arguments. A nil
// or empty argument is read as zero.
//
// Addition, subtraction and halving are linear column algorithms. Products
// use the schoolbook method: every digit of the right operand scales the left
// operand, the partial product is shifted into place and summed.
//
// # Division
//
// Quotients are found by binary search rather than digit recurrence. The
// search keeps the bounds
//
//	left = 1, right = dividend
//
// and tries the rounded up midpoint (left + right + 1) / 2. The midpoint is
// multiplied by the divisor and compared against the dividend to move one of
// the bounds. Each step costs one multiplication and the number of steps
// grows with the number of bits in the dividend.
package digits
