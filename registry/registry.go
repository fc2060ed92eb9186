package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/matrix"
)

// Registry is a fixed-capacity slot table of live matrices.
//
// mu guards slots and cursor. cursor counts inserts since construction and
// only ever grows; cursor mod len(slots) is the next slot to recycle.
type Registry struct {
	mu     sync.RWMutex
	slots  []*matrix.Matrix
	cursor uint64

	uniqueNames bool
	matrixOpts  []matrix.Option
	log         *zap.Logger
}

// Entry describes one occupied slot in a Snapshot.
type Entry struct {
	Slot       int
	Name       string
	Rows, Cols int
}

// New creates an empty Registry with capacity slots.
// By default names must be unique among live slots and logging is disabled.
// Complexity: O(capacity).
func New(capacity int, opts ...Option) (*Registry, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}
	r := &Registry{
		slots:       make([]*matrix.Matrix, capacity),
		uniqueNames: true,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Cap returns the fixed slot count.
func (r *Registry) Cap() int { return len(r.slots) }

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, m := range r.slots {
		if m != nil {
			n++
		}
	}

	return n
}

// Cursor returns the number of inserts performed so far.
func (r *Registry) Cursor() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cursor
}

// View runs fn with a read-only transaction under the read lock.
// Matrices obtained from tx may be read (e.g., encoded) but not mutated.
func (r *Registry) View(fn func(tx *Txn) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return fn(&Txn{r: r})
}

// Update runs fn with a writable transaction under the write lock.
// Evictions, installs and in-place mutation inside fn are atomic to all
// other callers. Changes already applied stay applied if fn returns an error.
func (r *Registry) Update(fn func(tx *Txn) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(&Txn{r: r, writable: true})
}

// Create allocates a zeroed rows×cols matrix called name and inserts it.
// Returns the slot index. See Txn.Create.
func (r *Registry) Create(name string, rows, cols int) (slot int, err error) {
	err = r.Update(func(tx *Txn) error {
		slot, err = tx.Create(name, rows, cols)
		return err
	})

	return slot, err
}

// Insert installs m into the next ring slot, evicting its occupant.
// Returns the slot index. See Txn.Insert.
func (r *Registry) Insert(m *matrix.Matrix) (slot int, err error) {
	err = r.Update(func(tx *Txn) error {
		slot, err = tx.Insert(m)
		return err
	})

	return slot, err
}

// Find returns the lowest slot whose matrix name equals name exactly.
func (r *Registry) Find(name string) (slot int, err error) {
	err = r.View(func(tx *Txn) error {
		slot, err = tx.Find(name)
		return err
	})

	return slot, err
}

// Lookup returns the matrix named name. The pointer is borrowed: it must not
// be retained past the next insert and must not be mutated outside Update.
func (r *Registry) Lookup(name string) (m *matrix.Matrix, err error) {
	err = r.View(func(tx *Txn) error {
		m, err = tx.Lookup(name)
		return err
	})

	return m, err
}

// Get returns the matrix in slot with the same borrowing rules as Lookup.
func (r *Registry) Get(slot int) (m *matrix.Matrix, err error) {
	err = r.View(func(tx *Txn) error {
		m, err = tx.Get(slot)
		return err
	})

	return m, err
}

// Snapshot lists occupied slots in index order.
func (r *Registry) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.slots))
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		out = append(out, Entry{Slot: i, Name: m.Name(), Rows: m.Rows(), Cols: m.Cols()})
	}

	return out
}

// Names returns the names of occupied slots in index order.
func (r *Registry) Names() []string {
	entries := r.Snapshot()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

// EvictAll releases every resident matrix and returns how many were held.
// The cursor keeps its value, so recycling continues where it left off.
func (r *Registry) EvictAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		r.slots[i] = nil
		n++
	}
	r.log.Debug("evicted all slots", zap.Int("count", n))

	return n
}
