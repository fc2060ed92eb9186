// Package matrix provides the named uint32 Matrix entity and its elementwise
// operations.
//
// The matrix package provides:
//
//   - Matrix: a named, fixed-shape, row-major buffer of uint32 values created
//     with New and zero-initialized. Names are 1..MaxNameLen-1 bytes, NUL-free.
//   - Operations on already-resolved matrices: Add (wrapping), Duplicate,
//     Equal, Shift (logical left/right) and RandomFill (uniform inclusive range).
//   - Validators and sentinel errors shared with the codec and registry packages.
//
// Operations never allocate or resize matrices; destinations are pre-created
// by the caller (normally through the registry).
//
// See the examples in this package for usage patterns.
package matrix
