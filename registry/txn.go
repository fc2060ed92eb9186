package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/matrix"
)

// Txn is the registry view handed to View and Update callbacks. It is only
// valid inside the callback and performs no locking of its own.
type Txn struct {
	r        *Registry
	writable bool
}

// New allocates a zeroed matrix with the registry's matrix options WITHOUT
// inserting it. Use it for destinations that should only become resident
// once an operation has succeeded.
func (tx *Txn) New(name string, rows, cols int) (*matrix.Matrix, error) {
	if !tx.writable {
		return nil, fmt.Errorf("New(%q): %w", name, ErrReadOnly)
	}

	return matrix.New(name, rows, cols, tx.r.matrixOpts...)
}

// Create allocates a zeroed matrix and inserts it; returns the slot index.
// Errors: those of matrix.New and Insert.
func (tx *Txn) Create(name string, rows, cols int) (int, error) {
	m, err := tx.New(name, rows, cols)
	if err != nil {
		return 0, err
	}

	return tx.Insert(m)
}

// Insert installs m at slot cursor mod Cap(), evicting the occupant.
//
// Implementation:
//   - Stage 1: reject nil, read-only txn, a matrix already resident elsewhere,
//     and (when names are unique) a name held by another live slot.
//   - Stage 2: evict the target occupant, install m, advance the cursor.
//
// The slot being recycled does not count as a name conflict: replacing "A"
// by a new "A" in the same slot leaves the name unique. A failed insert leaves
// slots and cursor unchanged.
func (tx *Txn) Insert(m *matrix.Matrix) (int, error) {
	r := tx.r
	if !tx.writable {
		return 0, fmt.Errorf("Insert: %w", ErrReadOnly)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Insert: %w", err)
	}
	pos := int(r.cursor % uint64(len(r.slots)))
	dupes := 0
	for i, cur := range r.slots {
		if cur == nil || i == pos {
			continue
		}
		if cur == m {
			return 0, fmt.Errorf("Insert(%q): slot %d: %w", m.Name(), i, ErrAlreadyResident)
		}
		if cur.Name() == m.Name() {
			if r.uniqueNames {
				return 0, fmt.Errorf("Insert(%q): slot %d: %w", m.Name(), i, ErrDuplicateName)
			}
			dupes++
		}
	}

	if old := r.slots[pos]; old != nil && old != m {
		r.log.Debug("evicting slot",
			zap.Int("slot", pos),
			zap.String("evicted", old.Name()),
			zap.String("incoming", m.Name()))
	}
	r.slots[pos] = m
	r.cursor++
	r.log.Debug("installed matrix",
		zap.Int("slot", pos),
		zap.String("name", m.Name()),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()))
	if dupes > 0 {
		r.log.Warn("ambiguous name: several live slots share it",
			zap.String("name", m.Name()),
			zap.Int("others", dupes))
	}

	return pos, nil
}

// Find returns the lowest slot whose matrix name equals name exactly.
// Empty slots are skipped, not treated as the end of the table.
func (tx *Txn) Find(name string) (int, error) {
	for i, m := range tx.r.slots {
		if m != nil && m.Name() == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("Find(%q): %w", name, ErrNotFound)
}

// Lookup resolves name to its matrix.
func (tx *Txn) Lookup(name string) (*matrix.Matrix, error) {
	slot, err := tx.Find(name)
	if err != nil {
		return nil, err
	}

	return tx.r.slots[slot], nil
}

// LookupAll resolves several names at once, failing on the first miss.
func (tx *Txn) LookupAll(names ...string) ([]*matrix.Matrix, error) {
	out := make([]*matrix.Matrix, len(names))
	for i, name := range names {
		m, err := tx.Lookup(name)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

// Get returns the matrix in slot.
// Errors: ErrSlotOutOfRange, ErrNotFound for an empty slot.
func (tx *Txn) Get(slot int) (*matrix.Matrix, error) {
	if slot < 0 || slot >= len(tx.r.slots) {
		return nil, fmt.Errorf("Get(%d): %w", slot, ErrSlotOutOfRange)
	}
	m := tx.r.slots[slot]
	if m == nil {
		return nil, fmt.Errorf("Get(%d): empty slot: %w", slot, ErrNotFound)
	}

	return m, nil
}
