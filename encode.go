package utf8

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pchchv/utf8/internal/bits"
)

// Encode returns the UTF-8 encoding of cps.
// Surrogates and code points above MaxRune are encoded as RuneError.
func Encode(cps []CodePoint) []byte {
	return AppendEncode(make([]byte, 0, len(cps)), cps...)
}

// AppendEncode appends the UTF-8 encoding of cps to dst
// and returns the extended buffer.
func AppendEncode(dst []byte, cps ...CodePoint) []byte {
	for _, cp := range cps {
		switch n := bits.Len(uint32(cp)); {
		case n <= 7:
			// 0xxxxxxx
			dst = append(dst, byte(cp))
		case n <= 11:
			// 110xxxxx 10xxxxxx
			dst = append(dst,
				t2|byte(cp>>6)&mask2,
				tx|byte(cp)&maskx)
		case n <= 16 && !isSurrogate(cp):
			// 1110xxxx 10xxxxxx 10xxxxxx
			dst = append(dst,
				t3|byte(cp>>12)&mask3,
				tx|byte(cp>>6)&maskx,
				tx|byte(cp)&maskx)
		case 17 <= n && n <= 21 && cp <= MaxRune:
			// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
			dst = append(dst,
				t4|byte(cp>>18)&mask4,
				tx|byte(cp>>12)&maskx,
				tx|byte(cp>>6)&maskx,
				tx|byte(cp)&maskx)
		default:
			dst = append(dst, replacement[:]...)
		}
	}

	return dst
}

// Len returns the number of bytes required to encode cp.
// It is 3 for code points that are encoded as RuneError.
func Len(cp CodePoint) int {
	switch n := bits.Len(uint32(cp)); {
	case n <= 7:
		return 1
	case n <= 11:
		return 2
	case 17 <= n && n <= 21 && cp <= MaxRune:
		return 4
	default:
		return 3
	}
}

// EncodeTo writes the UTF-8 encoding of cps to w.
// It returns the number of encoded bytes and
// any error encountered while writing to w.
// The written bytes are identical to those returned by Encode.
func EncodeTo(w io.Writer, cps []CodePoint) (n int, err error) {
	bw := bitio.NewWriter(w)
	for _, cp := range cps {
		if err = encodeCodePoint(bw, cp); err != nil {
			return n, err
		}
		n += Len(cp)
	}

	// flush pending writes
	if err = bw.Close(); err != nil {
		return n, err
	}

	return n, nil
}

// encodeCodePoint encodes cp as a lead byte prefix,
// the high payload bits and zero or more continuation bytes,
// writing to bw.
func encodeCodePoint(bw *bitio.Writer, cp CodePoint) error {
	switch n := bits.Len(uint32(cp)); {
	case n <= 7:
		// 0 : 1 byte, 7 bit payload
		return bw.WriteBits(uint64(cp), 8)
	case n <= 11:
		// 110 : 2 bytes, 5 + 6 bit payload
		return encodeSequence(bw, cp, 0x6, 3, 1)
	case n <= 16 && !isSurrogate(cp):
		// 1110 : 3 bytes, 4 + 6 + 6 bit payload
		return encodeSequence(bw, cp, 0xE, 4, 2)
	case 17 <= n && n <= 21 && cp <= MaxRune:
		// 11110 : 4 bytes, 3 + 6 + 6 + 6 bit payload
		return encodeSequence(bw, cp, 0x1E, 5, 3)
	default:
		return encodeSequence(bw, RuneError, 0xE, 4, 2)
	}
}

// encodeSequence writes the lead byte of a multi-byte sequence,
// made of the nprefix bits of prefix followed by the high payload bits of cp,
// and then ncont continuation bytes of 6 payload bits each.
func encodeSequence(bw *bitio.Writer, cp CodePoint, prefix uint64, nprefix uint8, ncont int) error {
	if err := bw.WriteBits(prefix, nprefix); err != nil {
		return err
	}

	nlead := 8 - nprefix
	if err := bw.WriteBits(bits.Field(uint32(cp), uint(6*ncont), uint(nlead)), nlead); err != nil {
		return err
	}

	for i := ncont - 1; i >= 0; i-- {
		// 10 : continuation byte tag
		if err := bw.WriteBits(0x2, 2); err != nil {
			return err
		}

		if err := bw.WriteBits(bits.Field(uint32(cp), uint(6*i), 6), 6); err != nil {
			return err
		}
	}

	return nil
}
