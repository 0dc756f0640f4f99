package utf8

// state is the part of a multi-byte sequence decoded so far.
// remaining == 0 if and only if the decoder is at a sequence boundary.
type state struct {
	pending   CodePoint // payload bits accumulated so far
	remaining int       // continuation bytes still needed
	size      int       // total length of the sequence in progress
}

// Decoder decodes a stream of UTF-8 bytes that may be delivered in
// arbitrarily sized chunks. A multi-byte sequence split across chunks is
// kept as state and completed by the next call to Decode.
//
// The zero value is a ready to use lenient decoder.
// A Decoder is not safe for concurrent use;
// use one Decoder per byte stream.
type Decoder struct {
	state
	strict bool
}

// NewDecoder returns a lenient decoder.
//
// A lenient decoder replaces illegal lead bytes with RuneError but
// takes every byte following a lead byte as a continuation byte,
// without checking its 10xxxxxx tag. Assembled values are not
// checked for overlong forms, surrogates or the MaxRune ceiling.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// NewStrictDecoder returns a decoder that validates sequences against RFC 3629.
//
// A byte without the 10xxxxxx tag inside a sequence aborts the sequence:
// RuneError is emitted and the byte is decoded again as a lead byte.
// A completed sequence holding an overlong form, a surrogate or a value above
// MaxRune is emitted as RuneError.
func NewStrictDecoder() *Decoder {
	return &Decoder{strict: true}
}

// Decode decodes the next chunk p of the byte stream and
// returns the code points completed by it.
//
// Bytes of a sequence left incomplete at the end of p produce no output;
// they are completed by subsequent calls.
func (d *Decoder) Decode(p []byte) []CodePoint {
	return d.appendDecode(make([]CodePoint, 0, len(p)), p)
}

// DecodeString is like Decode but takes the bytes of s.
func (d *Decoder) DecodeString(s string) []CodePoint {
	return d.Decode([]byte(s))
}

// InSequence reports whether the decoder is inside a multi-byte sequence,
// i.e. whether the bytes decoded so far end with an incomplete sequence.
// After the final chunk of a stream, a true result means the stream was truncated.
func (d *Decoder) InSequence() bool {
	return d.remaining > 0
}

func (d *Decoder) appendDecode(dst []CodePoint, p []byte) []CodePoint {
	for _, c := range p {
		dst = d.decodeByte(dst, c)
	}

	return dst
}

// decodeByte advances the decoder by one byte,
// appending a code point to dst for every completed or rejected sequence.
func (d *Decoder) decodeByte(dst []CodePoint, c byte) []CodePoint {
	if d.remaining > 0 {
		if !d.strict || c&^maskx == tx {
			d.pending = d.pending<<6 | CodePoint(c&maskx)
			d.remaining--
			if d.remaining == 0 {
				dst = append(dst, d.complete())
			}
			return dst
		}

		// if c != 10xxxxxx
		dst = append(dst, RuneError)
		d.state = state{}
	}

	switch {
	case c < tx:
		// if c == 0xxxxxxx
		dst = append(dst, CodePoint(c))
	case c < t2:
		// unexpected continuation byte
		// if c == 10xxxxxx
		dst = append(dst, RuneError)
	case c < t3:
		// if c == 110xxxxx
		d.state = state{pending: CodePoint(c & mask2), remaining: 1, size: 2}
	case c < t4:
		// if c == 1110xxxx
		d.state = state{pending: CodePoint(c & mask3), remaining: 2, size: 3}
	case c < t5:
		// if c == 11110xxx
		d.state = state{pending: CodePoint(c & mask4), remaining: 3, size: 4}
	default:
		// if c == 11111xxx
		dst = append(dst, RuneError)
	}

	return dst
}

// complete returns the code point of the sequence just finished
// and puts the decoder back at a sequence boundary.
func (d *Decoder) complete() CodePoint {
	cp, size := d.pending, d.size
	d.state = state{}
	if !d.strict {
		return cp
	}

	// check if number representation is larger than necessary
	switch size {
	case 2:
		if cp <= rune1Max {
			return RuneError
		}
	case 3:
		if cp <= rune2Max {
			return RuneError
		}
	case 4:
		if cp <= rune3Max {
			return RuneError
		}
	}

	if isSurrogate(cp) || cp > MaxRune {
		return RuneError
	}

	return cp
}
