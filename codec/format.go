package codec

import "encoding/binary"

const (
	// Magic opens every v1 stream.
	Magic = "MREG"
	// Version is the only v1 version this package reads and writes.
	Version uint16 = 1

	headerLen  = 8 // magic + version + reserved
	u32Len     = 4
	dimsLen    = 2 * u32Len
	sentinel   = 0xFF
	chunkElems = 4096 // elements per read in the streaming decoder
)

// le is the fixed byte order of every integer field.
var le = binary.LittleEndian

// appendHeader appends the v1 header to dst.
func appendHeader(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = le.AppendUint16(dst, Version)

	return le.AppendUint16(dst, 0)
}

// isMagic reports whether the first four bytes of b spell Magic.
func isMagic(b []byte) bool {
	return len(b) >= len(Magic) && string(b[:len(Magic)]) == Magic
}
