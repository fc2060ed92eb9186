package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matreg/matrix"
)

// recordHead holds the fields that precede the data block.
type recordHead struct {
	legacy     bool
	name       string
	rows, cols uint32
}

// count returns rows*cols; both are < 2^32 so the product fits in uint64.
func (h recordHead) count() uint64 { return uint64(h.rows) * uint64(h.cols) }

// checkNameLen validates the declared name length field.
func checkNameLen(n uint32) error {
	if n > matrix.MaxNameLen {
		return fmt.Errorf("name_len %d: %w", n, matrix.ErrNameTooLong)
	}
	if n == 0 {
		return fmt.Errorf("name_len 0: %w", ErrMissingTerminator)
	}

	return nil
}

// parseName strips the terminator from a raw name field.
func parseName(raw []byte) (string, error) {
	if raw[len(raw)-1] != 0 {
		return "", ErrMissingTerminator
	}

	return string(raw[:len(raw)-1]), nil
}

// checkDims validates declared rows/cols.
func (h recordHead) checkDims() error {
	if h.rows == 0 || h.cols == 0 {
		return fmt.Errorf("%d×%d: %w", h.rows, h.cols, matrix.ErrInvalidDimensions)
	}

	return nil
}

// newMatrix creates the destination through matrix.New so every entity
// invariant (name, shape, element cap) is enforced in one place.
func (h recordHead) newMatrix(limit uint64) (*matrix.Matrix, error) {
	if h.count() > limit {
		return nil, fmt.Errorf("%d×%d exceeds %d elements: %w", h.rows, h.cols, limit, matrix.ErrAllocation)
	}

	return matrix.New(h.name, int(h.rows), int(h.cols), matrix.WithMaxElements(limit))
}

// cursor is a bounds-checked reader over a byte slice.
type cursor struct {
	b   []byte
	off int
}

func (c *cursor) remaining() int { return len(c.b) - c.off }

func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, fmt.Errorf("%s needs %d bytes, %d left: %w", field, n, c.remaining(), ErrTruncatedInput)
	}
	p := c.b[c.off : c.off+n]
	c.off += n

	return p, nil
}

func (c *cursor) u32(field string) (uint32, error) {
	p, err := c.take(u32Len, field)
	if err != nil {
		return 0, err
	}

	return le.Uint32(p), nil
}

// Decode parses exactly one record from b (either layout).
//
// Implementation:
//   - Stage 1: detect and check the v1 header.
//   - Stage 2: read and validate name_len, name, rows, cols.
//   - Stage 3: require rows*cols*4 bytes to be present BEFORE allocating.
//   - Stage 4: create the matrix and copy the payload (never aliases b).
//   - Stage 5: reject trailing bytes (one 0xFF is allowed after a legacy record).
//
// Errors: ErrTruncatedInput, ErrUnsupportedVersion, ErrMissingTerminator,
// ErrTrailingData, matrix.ErrNameTooLong, matrix.ErrInvalidName,
// matrix.ErrInvalidDimensions, matrix.ErrAllocation.
func Decode(b []byte, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)
	c := &cursor{b: b}
	m, legacy, err := decodeRecord(c, o)
	if err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}
	rest := c.b[c.off:]
	if len(rest) == 0 || (legacy && len(rest) == 1 && rest[0] == sentinel) {
		return m, nil
	}

	return nil, codecErrorf(ctxDecode, fmt.Errorf("%d bytes: %w", len(rest), ErrTrailingData))
}

func decodeRecord(c *cursor, o Options) (*matrix.Matrix, bool, error) {
	var h recordHead
	h.legacy = !isMagic(c.b[c.off:])
	if !h.legacy {
		hdr, err := c.take(headerLen, "header")
		if err != nil {
			return nil, false, err
		}
		if v := le.Uint16(hdr[4:6]); v != Version {
			return nil, false, fmt.Errorf("version %d: %w", v, ErrUnsupportedVersion)
		}
	}
	nameLen, err := c.u32("name_len")
	if err != nil {
		return nil, false, err
	}
	if err = checkNameLen(nameLen); err != nil {
		return nil, false, err
	}
	raw, err := c.take(int(nameLen), "name")
	if err != nil {
		return nil, false, err
	}
	if h.name, err = parseName(raw); err != nil {
		return nil, false, err
	}
	if h.rows, err = c.u32("rows"); err != nil {
		return nil, false, err
	}
	if h.cols, err = c.u32("cols"); err != nil {
		return nil, false, err
	}
	if err = h.checkDims(); err != nil {
		return nil, false, err
	}
	if h.count() > uint64(c.remaining()/u32Len) {
		return nil, false, fmt.Errorf("data block of %d×%d needs %d bytes, %d left: %w",
			h.rows, h.cols, h.count()*u32Len, c.remaining(), ErrTruncatedInput)
	}
	m, err := h.newMatrix(o.maxElements)
	if err != nil {
		return nil, false, err
	}
	payload, _ := c.take(m.Len()*u32Len, "data")
	data := make([]uint32, m.Len())
	for i := range data {
		data[i] = le.Uint32(payload[i*u32Len:])
	}
	if err = m.Load(data); err != nil {
		return nil, false, err
	}

	return m, h.legacy, nil
}

// Decoder reads consecutive records from an io.Reader.
type Decoder struct {
	r io.Reader
	o Options
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, o: gatherOptions(opts...)}
}

// Decode reads the next record. It returns io.EOF (unwrapped) when r is
// exhausted exactly at a record boundary, ErrTruncatedInput when it ends
// inside one, and ErrIO for any other reader failure. The legacy 0xFF
// sentinel is not consumed; use Decode or ReadFile for single-record files.
func (d *Decoder) Decode() (*matrix.Matrix, error) {
	var word [u32Len]byte
	if _, err := io.ReadFull(d.r, word[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, d.fail("name_len", err)
	}
	h := recordHead{legacy: !isMagic(word[:])}
	if !h.legacy {
		var rest [headerLen - u32Len]byte
		if _, err := io.ReadFull(d.r, rest[:]); err != nil {
			return nil, d.fail("header", err)
		}
		if v := le.Uint16(rest[0:2]); v != Version {
			return nil, codecErrorf(ctxDecode, fmt.Errorf("version %d: %w", v, ErrUnsupportedVersion))
		}
		if _, err := io.ReadFull(d.r, word[:]); err != nil {
			return nil, d.fail("name_len", err)
		}
	}
	nameLen := le.Uint32(word[:])
	if err := checkNameLen(nameLen); err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}
	raw := make([]byte, nameLen)
	if _, err := io.ReadFull(d.r, raw); err != nil {
		return nil, d.fail("name", err)
	}
	name, err := parseName(raw)
	if err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}
	h.name = name
	var dims [dimsLen]byte
	if _, err = io.ReadFull(d.r, dims[:]); err != nil {
		return nil, d.fail("dims", err)
	}
	h.rows, h.cols = le.Uint32(dims[0:4]), le.Uint32(dims[4:8])
	if err = h.checkDims(); err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}
	// The stream length is unknown, so the element cap guards the allocation.
	m, err := h.newMatrix(d.o.maxElements)
	if err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}
	data := make([]uint32, m.Len())
	buf := make([]byte, min(len(data), chunkElems)*u32Len)
	for done := 0; done < len(data); {
		n := min(len(data)-done, chunkElems)
		if _, err = io.ReadFull(d.r, buf[:n*u32Len]); err != nil {
			return nil, d.fail("data", err)
		}
		for i := 0; i < n; i++ {
			data[done+i] = le.Uint32(buf[i*u32Len:])
		}
		done += n
	}
	if err = m.Load(data); err != nil {
		return nil, codecErrorf(ctxDecode, err)
	}

	return m, nil
}

// fail maps a mid-record read error to ErrTruncatedInput or ErrIO.
func (d *Decoder) fail(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return codecErrorf(ctxDecode, fmt.Errorf("%s: %w", field, ErrTruncatedInput))
	}

	return ioErrorf(ctxDecode+" "+field, err)
}
