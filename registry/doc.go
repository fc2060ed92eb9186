// Package registry holds live matrix.Matrix values in a fixed number of slots
// and addresses them by name.
//
// Insertion follows ring-buffer recycling: the target slot is cursor mod
// capacity, whatever it holds is evicted first, and the cursor advances by one.
// Recency of use plays no part. Lookup is by exact name equality over slots in
// index order.
//
// The Registry is the only owner of the matrices it holds. Callers borrow a
// matrix for the duration of a callback (View/Update) or a single call; a
// borrowed pointer becomes stale once its slot is recycled.
//
// All methods are safe for concurrent use. View and Update run their callback
// under the registry lock so a multi-step unit of work (resolve, operate,
// insert) is atomic to every other caller. Callbacks must not call methods of
// the same Registry.
//
// Errors:
//
//	ErrNotFound         - no live matrix has the name, or a slot is empty.
//	ErrDuplicateName    - insert would give two live slots the same name.
//	ErrAlreadyResident  - the same *matrix.Matrix already occupies another slot.
//	ErrSlotOutOfRange   - slot index outside [0, Cap()).
//	ErrInvalidCapacity  - capacity < 1.
//	ErrReadOnly         - mutation attempted inside View.
package registry
