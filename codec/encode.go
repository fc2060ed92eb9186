package codec

import (
	"io"

	"github.com/katalvlaran/matreg/matrix"
)

const (
	ctxEncode = "Encode"
	ctxDecode = "Decode"
)

// EncodedLen returns the exact byte length Encode produces for m under opts.
func EncodedLen(m *matrix.Matrix, opts ...Option) int {
	o := gatherOptions(opts...)

	return encodedLen(m, o)
}

func encodedLen(m *matrix.Matrix, o Options) int {
	n := u32Len + len(m.Name()) + 1 + dimsLen + m.Len()*u32Len
	switch {
	case o.format == FormatV1:
		n += headerLen
	case o.legacySentinel:
		n++
	}

	return n
}

// Encode returns the binary form of m. The buffer is sized up front and
// filled in one pass; m is only read.
//
// Errors: matrix.ErrNilMatrix.
func Encode(m *matrix.Matrix, opts ...Option) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, codecErrorf(ctxEncode, err)
	}
	o := gatherOptions(opts...)

	return appendRecord(make([]byte, 0, encodedLen(m, o)), m, o), nil
}

// appendRecord appends header (v1), record and sentinel (legacy, if asked).
func appendRecord(dst []byte, m *matrix.Matrix, o Options) []byte {
	if o.format == FormatV1 {
		dst = appendHeader(dst)
	}
	name := m.Name()
	dst = le.AppendUint32(dst, uint32(len(name)+1))
	dst = append(dst, name...)
	dst = append(dst, 0)
	dst = le.AppendUint32(dst, uint32(m.Rows()))
	dst = le.AppendUint32(dst, uint32(m.Cols()))
	for _, v := range m.Data() {
		dst = le.AppendUint32(dst, v)
	}
	if o.format == FormatLegacy && o.legacySentinel {
		dst = append(dst, sentinel)
	}

	return dst
}

// Encoder writes records to an io.Writer.
type Encoder struct {
	w io.Writer
	o Options
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, o: gatherOptions(opts...)}
}

// Encode writes one record for m with a single Write call.
// Errors: matrix.ErrNilMatrix, ErrIO (including short writes).
func (e *Encoder) Encode(m *matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return codecErrorf(ctxEncode, err)
	}
	buf := appendRecord(make([]byte, 0, encodedLen(m, e.o)), m, e.o)
	n, err := e.w.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return ioErrorf(ctxEncode, err)
	}

	return nil
}
