// Package object defines the game entities and the helpers that create and age them.
package object

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Compact removes every destroyed object from items, preserving order.
// The backing array is reused.
func Compact[T Destructible](items []T) []T {
	kept := items[:0]
	for _, obj := range items {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	// Drop references held past the new length so removed objects can be collected.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
