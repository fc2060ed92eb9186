package codec

import (
	"fmt"

	"github.com/katalvlaran/matreg/matrix"
)

// Format selects the layout written by encoders. Decoders accept both.
type Format uint8

const (
	// FormatV1 prefixes the record with the magic/version header.
	FormatV1 Format = iota
	// FormatLegacy writes the bare record, as the original tool did.
	FormatLegacy
)

// String returns the config spelling of f.
func (f Format) String() string {
	switch f {
	case FormatV1:
		return "v1"
	case FormatLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps "v1" and "legacy" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "v1", "":
		return FormatV1, nil
	case "legacy":
		return FormatLegacy, nil
	default:
		return 0, fmt.Errorf("codec: unknown format %q", s)
	}
}

const (
	panicFormatInvalid      = "codec: WithFormat: unknown format"
	panicMaxElementsInvalid = "codec: WithMaxElements: limit must be > 0"
)

// Option configures encoders and decoders.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	format         Format
	legacySentinel bool   // append 0xFF after a legacy record
	maxElements    uint64 // decode cap on rows*cols
}

// WithFormat selects the layout written by encoders. Panics on unknown values.
func WithFormat(f Format) Option {
	if f != FormatV1 && f != FormatLegacy {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithLegacySentinel makes legacy encoders append the 0xFF byte the original
// writer emitted. It has no effect on FormatV1.
func WithLegacySentinel() Option {
	return func(o *Options) { o.legacySentinel = true }
}

// WithMaxElements caps rows*cols accepted by decoders (ErrAllocation above it).
func WithMaxElements(limit uint64) Option {
	if limit == 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = limit }
}

func gatherOptions(user ...Option) Options {
	o := Options{format: FormatV1, maxElements: matrix.DefaultMaxElements}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
