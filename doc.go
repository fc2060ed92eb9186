// Package matreg is an in-memory registry of named uint32 matrices with a
// small line-command shell and a compact binary file format.
//
// What is matreg?
//
//	A fixed-capacity slot table of named matrices, driven by commands:
//		• Matrix primitives: create, fill, display
//		• Elementwise operations: add (wrapping), duplicate, equal, shift
//		• Random fill from an inclusive range
//		• Persistence: read and write one matrix per file
//
// When every slot is taken, new matrices recycle slots in insertion order,
// so the oldest resident is replaced first.
//
// Everything is organized under these subpackages:
//
//	matrix/   - the Matrix type, validators and elementwise operations
//	registry/ - the slot table with ring recycling and read/write transactions
//	codec/    - little-endian binary encoding (v1 header or legacy layout)
//	config/   - defaults, config file, MATREG_* environment and flags (viper)
//	logging/  - zap logger construction
//	shell/    - command parsing and dispatch
//	cmd/      - the matreg binary (cobra)
//
// Quick session:
//
//	> create A 2 2
//	> random A 1 9
//	> duplicate A B
//	> add A B C
//	> shift C r 1
//	> equal A C
//	SAME DATA IN BOTH
//
//	go install github.com/katalvlaran/matreg/cmd/matreg@latest
package matreg
