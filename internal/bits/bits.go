// Package bits provides the bit arithmetic shared by the UTF-8 encoder.
package bits

import mathbits "math/bits"

// Len returns the minimum number of bits required to represent x.
// The result is 0 for x == 0.
//
// Examples of values on the left and lengths on the right:
//
//	0x00     =>  0
//	0x7F     =>  7
//	0x80     =>  8
//	0x7FF    => 11
//	0xFFFF   => 16
//	0x10FFFF => 21
func Len(x uint32) uint {
	return uint(mathbits.Len32(x))
}

// Field returns width bits of x, starting at bit shift
// (counted from the least significant bit).
func Field(x uint32, shift, width uint) uint64 {
	return uint64(x>>shift) & (1<<width - 1)
}
