package registry

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/matrix"
)

// DefaultCapacity is the slot count used by the interactive tool.
const DefaultCapacity = 10

// Option configures a Registry at construction.
type Option func(r *Registry)

// WithAllowDuplicateNames permits several live slots to share a name.
// Find then resolves to the lowest slot index and each such insert is
// logged at warn level as ambiguous.
func WithAllowDuplicateNames() Option {
	return func(r *Registry) { r.uniqueNames = false }
}

// WithLogger sets the logger for slot events. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l.Named("registry")
		}
	}
}

// WithMatrixOptions passes options to matrix.New for matrices the registry
// creates (e.g., matrix.WithMaxElements).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(r *Registry) { r.matrixOpts = append(r.matrixOpts, opts...) }
}
