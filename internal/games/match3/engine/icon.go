// Package engine implements the match-three rules: grid storage, run detection,
// gravity collapse/refill and move validation.
// It has no dependency on the terminal layer so it can be driven headlessly.
package engine

import "fmt"

// Icon is an immutable tile type. Two icons are equal when their types match.
type Icon int8

// Empty marks a cell that currently holds no icon.
// It never equals a real icon and never participates in a run.
const Empty Icon = -1

// NewIcon returns the icon with the given type id.
// Negative ids are not valid icon types and map to Empty.
func NewIcon(typ int) Icon {
	if typ < 0 {
		return Empty
	}
	return Icon(typ)
}

// Type returns the type id, or -1 for Empty.
func (i Icon) Type() int {
	return int(i)
}

// IsEmpty reports whether the icon is the Empty marker.
func (i Icon) IsEmpty() bool {
	return i < 0
}

// Matches reports whether two icons are the same non-empty type.
func (i Icon) Matches(other Icon) bool {
	return !i.IsEmpty() && i == other
}

func (i Icon) String() string {
	if i.IsEmpty() {
		return "*"
	}
	return fmt.Sprintf("%d", int(i))
}
