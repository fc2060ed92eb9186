package codec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/matreg/codec"
	"github.com/katalvlaran/matreg/matrix"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// snapshot is a comparable view of a matrix for cmp.Diff.
type snapshot struct {
	Name       string
	Rows, Cols int
	Data       []uint32
}

func snap(m *matrix.Matrix) snapshot {
	return snapshot{Name: m.Name(), Rows: m.Rows(), Cols: m.Cols(), Data: m.Data()}
}

func mustMatrix(t *testing.T, name string, rows, cols int, vals ...uint32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, rows, cols)
	require.NoError(t, err)
	if len(vals) > 0 {
		require.NoError(t, m.Load(vals))
	}

	return m
}

// legacyRecord builds bytes the way the original tool laid them out.
func legacyRecord(name string, rows, cols uint32, vals ...uint32) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, uint32(len(name)+1))
	b = append(b, name...)
	b = append(b, 0)
	b = binary.LittleEndian.AppendUint32(b, rows)
	b = binary.LittleEndian.AppendUint32(b, cols)
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, v)
	}

	return b
}

func TestEncode_LegacyLayoutBytes(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "AB", 1, 2, 0x01020304, 7)
	got, err := codec.Encode(m, codec.WithFormat(codec.FormatLegacy))
	require.NoError(t, err)
	want := []byte{
		3, 0, 0, 0, // name_len incl. terminator
		'A', 'B', 0,
		1, 0, 0, 0, // rows
		2, 0, 0, 0, // cols
		4, 3, 2, 1, // little-endian element
		7, 0, 0, 0,
	}
	require.Equal(t, want, got)
	require.Equal(t, len(want), codec.EncodedLen(m, codec.WithFormat(codec.FormatLegacy)))
}

func TestEncode_V1Header(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "A", 1, 1, 9)
	got, err := codec.Encode(m)
	require.NoError(t, err)
	require.Equal(t, []byte("MREG\x01\x00\x00\x00"), got[:8])
	require.Equal(t, legacyRecord("A", 1, 1, 9), got[8:])
	require.Len(t, got, codec.EncodedLen(m))
}

func TestEncode_LegacySentinel(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "A", 1, 1, 9)
	got, err := codec.Encode(m, codec.WithFormat(codec.FormatLegacy), codec.WithLegacySentinel())
	require.NoError(t, err)
	require.Equal(t, byte(0xFF), got[len(got)-1])
	require.Len(t, got, codec.EncodedLen(m, codec.WithFormat(codec.FormatLegacy), codec.WithLegacySentinel()))

	// The sentinel is a legacy-only artifact.
	v1, err := codec.Encode(m, codec.WithLegacySentinel())
	require.NoError(t, err)
	require.Len(t, v1, codec.EncodedLen(m))
}

func TestEncode_Nil(t *testing.T) {
	t.Parallel()
	_, err := codec.Encode(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_]{0,48}`).Draw(rt, "name")
		rows := rapid.IntRange(1, 8).Draw(rt, "rows")
		cols := rapid.IntRange(1, 8).Draw(rt, "cols")
		vals := rapid.SliceOfN(rapid.Uint32(), rows*cols, rows*cols).Draw(rt, "vals")
		format := rapid.SampledFrom([]codec.Format{codec.FormatV1, codec.FormatLegacy}).Draw(rt, "format")

		m, err := matrix.New(name, rows, cols)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		_ = m.Load(vals)
		b, err := codec.Encode(m, codec.WithFormat(format))
		if err != nil {
			rt.Fatalf("Encode: %v", err)
		}
		got, err := codec.Decode(b)
		if err != nil {
			rt.Fatalf("Decode: %v", err)
		}
		if diff := cmp.Diff(snap(m), snap(got)); diff != "" {
			rt.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	t.Parallel()
	b := legacyRecord("A", 1, 1, 5)
	m, err := codec.Decode(b)
	require.NoError(t, err)
	b[len(b)-4] = 0xAA
	require.Equal(t, []uint32{5}, m.Data())
}

func TestDecode_LegacyFixtureWithSentinel(t *testing.T) {
	t.Parallel()
	b := append(legacyRecord("temp_mat", 2, 2, 10, 11, 12, 15), 0xFF)
	m, err := codec.Decode(b)
	require.NoError(t, err)
	require.Equal(t, snapshot{"temp_mat", 2, 2, []uint32{10, 11, 12, 15}}, snap(m))
}

func TestDecode_EveryPrefixTruncated(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "prefix", 2, 3, 1, 2, 3, 4, 5, 6)
	for _, f := range []codec.Format{codec.FormatV1, codec.FormatLegacy} {
		full, err := codec.Encode(m, codec.WithFormat(f))
		require.NoError(t, err)
		for n := 0; n < len(full); n++ {
			got, err := codec.Decode(full[:n])
			require.ErrorIs(t, err, codec.ErrTruncatedInput, "format=%v prefix=%d", f, n)
			require.Nil(t, got, "no partially populated matrix on failure")
		}
	}
}

func TestDecode_FieldValidation(t *testing.T) {
	t.Parallel()
	tooLong := binary.LittleEndian.AppendUint32(nil, matrix.MaxNameLen+1)
	tooLong = append(tooLong, make([]byte, 64)...)

	noTerm := legacyRecord("A", 1, 1, 1)
	noTerm[5] = 'x' // overwrite the NUL

	innerNul := legacyRecord("A\x00B", 1, 1, 1)

	hugeShort := legacyRecord("A", 1<<16, 1<<16) // 4 GiB declared, nothing present

	badVersion := append([]byte("MREG\x02\x00\x00\x00"), legacyRecord("A", 1, 1, 1)...)

	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{"name too long", tooLong, matrix.ErrNameTooLong},
		{"zero name_len", binary.LittleEndian.AppendUint32(nil, 0), codec.ErrMissingTerminator},
		{"missing terminator", noTerm, codec.ErrMissingTerminator},
		{"nul inside name", innerNul, matrix.ErrInvalidName},
		{"zero rows", legacyRecord("A", 0, 3), matrix.ErrInvalidDimensions},
		{"zero cols", legacyRecord("A", 3, 0), matrix.ErrInvalidDimensions},
		{"data shorter than declared", legacyRecord("A", 2, 2, 1, 2, 3), codec.ErrTruncatedInput},
		{"huge dims short input", hugeShort, codec.ErrTruncatedInput},
		{"unsupported version", badVersion, codec.ErrUnsupportedVersion},
		{"trailing bytes", append(legacyRecord("A", 1, 1, 1), 1, 2), codec.ErrTrailingData},
		{"non-sentinel trailing byte", append(legacyRecord("A", 1, 1, 1), 0x00), codec.ErrTrailingData},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := codec.Decode(tc.in)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestDecode_V1RejectsSentinel(t *testing.T) {
	t.Parallel()
	b, err := codec.Encode(mustMatrix(t, "A", 1, 1, 1))
	require.NoError(t, err)
	_, err = codec.Decode(append(b, 0xFF))
	require.ErrorIs(t, err, codec.ErrTrailingData)
}

func TestDecode_ElementCap(t *testing.T) {
	t.Parallel()
	b := legacyRecord("A", 2, 2, 1, 2, 3, 4)
	_, err := codec.Decode(b, codec.WithMaxElements(3))
	require.ErrorIs(t, err, matrix.ErrAllocation)
	_, err = codec.Decode(b, codec.WithMaxElements(4))
	require.NoError(t, err)
}

func TestStream_MultipleRecords(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	first := mustMatrix(t, "first", 2, 2, 1, 2, 3, 4)
	second := mustMatrix(t, "second", 1, 3, 7, 8, 9)
	require.NoError(t, codec.NewEncoder(&buf).Encode(first))
	require.NoError(t, codec.NewEncoder(&buf, codec.WithFormat(codec.FormatLegacy)).Encode(second))

	dec := codec.NewDecoder(&buf)
	got1, err := dec.Decode()
	require.NoError(t, err)
	got2, err := dec.Decode()
	require.NoError(t, err)
	_, err = dec.Decode()
	require.ErrorIs(t, err, io.EOF)

	require.Empty(t, cmp.Diff(snap(first), snap(got1)))
	require.Empty(t, cmp.Diff(snap(second), snap(got2)))
}

func TestStream_LargeMatrixSpansChunks(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "big", 100, 100)
	require.NoError(t, matrix.RandomFill(m, 0, 1<<31))
	var buf bytes.Buffer
	require.NoError(t, codec.NewEncoder(&buf).Encode(m))

	got, err := codec.NewDecoder(iotest.OneByteReader(&buf)).Decode()
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, got))
}

func TestStream_TruncatedAndIOErrors(t *testing.T) {
	t.Parallel()
	full, err := codec.Encode(mustMatrix(t, "A", 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	for n := 1; n < len(full); n++ {
		_, err := codec.NewDecoder(bytes.NewReader(full[:n])).Decode()
		require.ErrorIs(t, err, codec.ErrTruncatedInput, "prefix=%d", n)
	}

	boom := errors.New("boom")
	_, err = codec.NewDecoder(iotest.ErrReader(boom)).Decode()
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, boom)

	_, err = codec.NewDecoder(bytes.NewReader(legacyRecord("A", 1<<16, 1<<16))).Decode()
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestEncoder_WriteErrors(t *testing.T) {
	t.Parallel()
	m := mustMatrix(t, "A", 1, 1, 1)
	boom := errors.New("disk full")
	err := codec.NewEncoder(failWriter{boom}).Encode(m)
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, boom)

	err = codec.NewEncoder(shortWriter{}).Encode(m)
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, io.ErrShortWrite)

	require.ErrorIs(t, codec.NewEncoder(io.Discard).Encode(nil), matrix.ErrNilMatrix)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	f, err := codec.ParseFormat("legacy")
	require.NoError(t, err)
	require.Equal(t, codec.FormatLegacy, f)
	require.Equal(t, "legacy", f.String())
	f, err = codec.ParseFormat("v1")
	require.NoError(t, err)
	require.Equal(t, codec.FormatV1, f)
	_, err = codec.ParseFormat("v9")
	require.Error(t, err)
	require.Panics(t, func() { codec.WithFormat(codec.Format(9)) })
	require.Panics(t, func() { codec.WithMaxElements(0) })
}
