// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

// Package dpq provides a dynamic priority queue: an array-backed binary
// min-heap that additionally keeps a live record of every contained item's
// position. The position records turn the two operations a plain heap cannot
// offer, changing an item's priority in place and removing an arbitrary item,
// into O(log n) work, because the queue always knows where an item is without
// searching for it. Pathfinding frontiers, event schedulers, and
// discrete-event simulators, which constantly reprioritize or cancel pending
// work, are the intended callers.
//
// A queue is assembled from two caller-supplied capabilities: a [Comparator]
// that orders items (adapt a plain less-than predicate with [FromLess]) and an
// [Index] that reads and writes an item's recorded position. Use [ByPosition]
// when items can carry their own position field, passing such items by
// pointer, or [MapIndex] when they cannot and should instead be tracked by
// value identity.
//
// Queues are not safe for concurrent use; see [Queue].
package dpq
