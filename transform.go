package utf8

import "golang.org/x/text/transform"

// Transformer is a transform.Transformer that decodes its source and
// encodes the decoded code points again, producing well-formed UTF-8.
// Malformed input shows up in the output as the encoding of RuneError.
//
// The bytes of an incomplete sequence at the end of the input are dropped by
// a lenient Transformer, and replaced with RuneError by a strict one.
type Transformer struct {
	dec    *Decoder
	strict bool
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a Transformer backed by a lenient decoder.
func NewTransformer() *Transformer {
	return &Transformer{dec: NewDecoder()}
}

// NewStrictTransformer returns a Transformer backed by a strict decoder.
func NewStrictTransformer() *Transformer {
	return &Transformer{dec: NewStrictDecoder(), strict: true}
}

// Reset discards the decoder, along with any incomplete sequence,
// and starts over with a new one.
func (t *Transformer) Reset() {
	if t.strict {
		t.dec = NewStrictDecoder()
	} else {
		t.dec = NewDecoder()
	}
}

// Transform implements the transform.Transformer interface.
// Bytes of an incomplete sequence are consumed and kept by the decoder,
// so Transform never returns transform.ErrShortSrc.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// one byte completes at most one sequence and,
	// in strict mode, rejects at most one more.
	var buf [2]CodePoint
	for nSrc < len(src) {
		prev := *t.dec
		cps := t.dec.decodeByte(buf[:0], src[nSrc])
		size := 0
		for _, cp := range cps {
			size += Len(cp)
		}

		if nDst+size > len(dst) {
			*t.dec = prev
			return nDst, nSrc, transform.ErrShortDst
		}

		nDst += len(AppendEncode(dst[nDst:nDst], cps...))
		nSrc++
	}

	if atEOF && t.dec.InSequence() {
		if t.strict {
			if nDst+len(replacement) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacement[:])
		}
		t.dec.state = state{}
	}

	return nDst, nSrc, nil
}
