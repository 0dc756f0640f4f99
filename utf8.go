// Package utf8 implements encoding of Unicode code points to UTF-8 and
// streaming decoding of UTF-8 bytes back to code points.
//
// Neither direction reports errors. Illegal code points and malformed bytes
// are replaced in-band by the replacement character U+FFFD.
package utf8

// CodePoint is an unsigned integer identifying a Unicode scalar value.
// Values above MaxRune are representable so that they can be passed to the
// encoder, which replaces them.
type CodePoint uint32

const (
	RuneError CodePoint = 0xFFFD   // replacement character
	MaxRune   CodePoint = 0x10FFFF // maximum legal code point
)

// code points in the surrogate range are reserved by UTF-16
// and are illegal as UTF-8 encoded values.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000
	t5 = 0xF8 // 1111 1000

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// replacement is the UTF-8 encoding of RuneError.
var replacement = [3]byte{0xEF, 0xBF, 0xBD}

// ReplacementBytes returns the UTF-8 encoding of RuneError.
// The returned slice is a fresh copy.
func ReplacementBytes() []byte {
	return []byte{replacement[0], replacement[1], replacement[2]}
}

// AsciiToUnicode returns the bytes of ascii as code points, one per byte.
func AsciiToUnicode(ascii string) []CodePoint {
	cps := make([]CodePoint, len(ascii))
	for i := 0; i < len(ascii); i++ {
		cps[i] = CodePoint(ascii[i])
	}

	return cps
}

func isSurrogate(cp CodePoint) bool {
	return surrogateMin <= cp && cp <= surrogateMax
}
