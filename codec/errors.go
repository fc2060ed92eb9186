package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when a declared field or the data block
	// extends past the available bytes.
	ErrTruncatedInput = errors.New("codec: truncated input")

	// ErrIO wraps a failure of the underlying reader, writer or filesystem.
	// The original error stays in the chain (errors.Is(err, fs.ErrNotExist) works).
	ErrIO = errors.New("codec: i/o failure")

	// ErrUnsupportedVersion is returned for a v1 header with an unknown version.
	ErrUnsupportedVersion = errors.New("codec: unsupported format version")

	// ErrTrailingData is returned by Decode when bytes remain after the record.
	ErrTrailingData = errors.New("codec: trailing data after record")

	// ErrMissingTerminator is returned when the name field does not end in NUL.
	ErrMissingTerminator = errors.New("codec: name missing terminator")
)

// codecErrorf tags err with an operation name.
func codecErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ioErrorf marks err as ErrIO while keeping err itself matchable.
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
