package utf8

import (
	"errors"
	"io"
)

const (
	defaultBufSize           = 4096
	minReadBufferSize        = 16
	maxConsecutiveEmptyReads = 100
)

// Reader implements buffered decoding of code points from an io.Reader.
// Reader reads chunks of UTF-8 bytes from the underlying reader and
// feeds them to a single Decoder.
type Reader struct {
	buf []byte      // chunk read buffer
	rd  io.Reader   // reader provided by the client
	dec *Decoder    // decoder of the byte stream
	cps []CodePoint // decoded code points not yet returned
	r   int         // read position within cps
	err error
}

// NewReader returns a new Reader, decoding r with a lenient decoder,
// whose buffer has the default size.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, defaultBufSize)
}

// NewStrictReader returns a new Reader, decoding r with a strict decoder,
// whose buffer has the default size.
func NewStrictReader(r io.Reader) *Reader {
	return NewStrictReaderSize(r, defaultBufSize)
}

// NewReaderSize returns a new Reader, decoding r with a lenient decoder,
// that reads chunks of at least size bytes.
func NewReaderSize(r io.Reader, size int) *Reader {
	if size < minReadBufferSize {
		size = minReadBufferSize
	}

	return &Reader{
		buf: make([]byte, size),
		rd:  r,
		dec: NewDecoder(),
	}
}

// NewStrictReaderSize returns a new Reader, decoding r with a strict decoder,
// that reads chunks of at least size bytes.
func NewStrictReaderSize(r io.Reader, size int) *Reader {
	rd := NewReaderSize(r, size)
	rd.dec = NewStrictDecoder()
	return rd
}

// ReadCodePoint reads and returns the next code point.
//
// At the end of the input it returns io.EOF,
// or io.ErrUnexpectedEOF when the input ends inside a multi-byte sequence.
// Errors of the underlying reader are returned once all code points decoded
// before the error have been read.
func (b *Reader) ReadCodePoint() (CodePoint, error) {
	for b.buffered() == 0 {
		if b.err != nil {
			return 0, b.readErr()
		}
		b.fill()
	}

	cp := b.cps[b.r]
	b.r++
	return cp, nil
}

// ReadAll reads code points until the end of the input or an error.
// A successful ReadAll returns err == nil, not err == io.EOF.
func (b *Reader) ReadAll() ([]CodePoint, error) {
	var cps []CodePoint
	for {
		cp, err := b.ReadCodePoint()
		if err != nil {
			if err == io.EOF {
				return cps, nil
			}
			return cps, err
		}
		cps = append(cps, cp)
	}
}

// InSequence reports whether the bytes read so far
// end inside a multi-byte sequence.
func (b *Reader) InSequence() bool {
	return b.dec.InSequence()
}

// fill reads a new chunk and decodes it.
func (b *Reader) fill() {
	b.cps = b.cps[:0]
	b.r = 0
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := b.rd.Read(b.buf)
		if n < 0 {
			panic(errors.New("utf8.Reader.fill: reader returned negative count from Read"))
		}

		b.cps = b.dec.appendDecode(b.cps, b.buf[:n])
		if err != nil {
			if err == io.EOF && b.dec.InSequence() {
				err = io.ErrUnexpectedEOF
			}
			b.err = err
			return
		}

		if n > 0 {
			return
		}
	}

	b.err = io.ErrNoProgress
}

// buffered returns the number of code points that can
// be read from the current buffer.
func (b *Reader) buffered() int {
	return len(b.cps) - b.r
}

func (b *Reader) readErr() error {
	err := b.err
	b.err = nil
	return err
}
