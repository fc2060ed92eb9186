// SPDX-License-Identifier: MIT

// Package matrix: small domain types used by the operations.
package matrix

import "fmt"

// Direction selects a logical shift direction for Shift.
type Direction uint8

const (
	// Left shifts toward the most significant bit; vacated bits are zero.
	Left Direction = iota + 1
	// Right shifts toward the least significant bit; no sign extension.
	Right
)

// String returns "left", "right" or "Direction(n)" for invalid values.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// valid reports whether d is Left or Right.
func (d Direction) valid() bool { return d == Left || d == Right }

// ParseDirection maps "l"/"left" and "r"/"right" to a Direction.
// Any other token fails with ErrInvalidDirection.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("ParseDirection(%q): %w", token, ErrInvalidDirection)
	}
}
