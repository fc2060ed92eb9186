// Package codec encodes matrix.Matrix values to a compact binary layout and
// decodes them back.
//
// Layout (all integers little-endian, independent of the host):
//
//	v1:     "MREG" | u16 version=1 | u16 reserved=0 | record
//	legacy:                                           record
//	record: u32 name_len | name bytes + NUL (name_len bytes) | u32 rows | u32 cols
//	        | rows*cols × u32, row-major
//
// Decoders detect the layout from the first four bytes: a legacy record starts
// with name_len <= matrix.MaxNameLen, which can never spell the magic.
// Files written by the legacy tool carry one extra 0xFF byte after the data
// block; Decode and ReadFile accept exactly that one byte on legacy input.
//
// Decoding validates every declared field before the data block is consumed and
// always copies into a freshly created matrix; a failed decode returns no matrix.
package codec
