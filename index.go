// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq

// NotQueued is the position recorded for an item that is not currently held
// by a queue. Valid positions are 1-based so that the zero value of an
// intrusive item starts out unqueued.
const NotQueued = 0

// An Index gives the queue access to an item's recorded position. Position
// must be side-effect free and reflect the most recent SetPosition for an
// equivalent item; the queue calls both synchronously, never concurrently.
type Index[T any] interface {
	// Position returns the item's current 1-based position, or NotQueued.
	Position(item T) int
	// SetPosition records the item's position. The queue calls it with
	// NotQueued exactly when the item leaves the queue.
	SetPosition(item T, pos int)
}

// Positioned is implemented by items that carry their own position field for
// use with [ByPosition].
type Positioned interface {
	Position() int
	SetPosition(pos int)
}

// ByPosition is an intrusive [Index]: the position lives inside the item
// itself and reads and writes are direct field access. Items must be handed
// to the queue by pointer (or another stable handle) so that the queue and
// the caller observe the same field.
type ByPosition[T Positioned] struct{}

func (ByPosition[T]) Position(item T) int         { return item.Position() }
func (ByPosition[T]) SetPosition(item T, pos int) { item.SetPosition(pos) }

// MapIndex is a non-intrusive [Index] backed by a map keyed on item equality,
// for items that cannot or should not carry a position field. An absent key
// reads as [NotQueued], and recording NotQueued deletes the entry, so the map
// only ever holds items currently in the queue.
//
// Because the map is keyed on the item value, queued items must be pairwise
// distinct, and mutating a field that takes part in equality while the item
// is queued orphans its entry.
type MapIndex[T comparable] map[T]int

// NewMapIndex returns an empty MapIndex ready for use.
func NewMapIndex[T comparable]() MapIndex[T] {
	return MapIndex[T]{}
}

func (mi MapIndex[T]) Position(item T) int {
	return mi[item]
}

func (mi MapIndex[T]) SetPosition(item T, pos int) {
	if pos == NotQueued {
		delete(mi, item)
		return
	}
	mi[item] = pos
}
