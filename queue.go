// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq

// A Queue is a dynamic priority queue: a binary min-heap under the supplied
// [Comparator] that tracks the position of every item it holds through the
// supplied [Index]. The position records are what make [Queue.Update] and
// [Queue.Remove] O(log n) instead of O(n): the queue never searches for an
// item, it asks the index where the item is.
//
// A Queue is not safe for concurrent use. Every operation runs to completion
// on the caller's goroutine; callers that share a Queue across goroutines
// must provide their own mutual exclusion.
type Queue[T any] struct {
	compare Comparator[T]
	index   Index[T]
	items   []T
	maxSize int // < 0 means unbounded
}

// New returns an empty queue ordered by compare, with item positions stored
// through index.
func New[T any](compare Comparator[T], index Index[T], opts ...Option) *Queue[T] {
	o := options{maxSize: -1}
	for _, fn := range opts {
		fn(&o)
	}
	return &Queue[T]{
		compare: compare,
		index:   index,
		items:   make([]T, 0, o.sliceCap),
		maxSize: o.maxSize,
	}
}

// Len returns the number of items currently in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool {
	return len(q.items) == 0
}

// Contains reports whether item is currently in the queue, according to its
// recorded position.
func (q *Queue[T]) Contains(item T) bool {
	return q.index.Position(item) != NotQueued
}

// Push inserts an item that is not already in the queue and records its
// position. Pushing an item whose recorded position is not [NotQueued]
// corrupts the queue; use [Queue.PushOrUpdate] when the item may already be
// present. Returns [ErrCapacityExceeded] when the queue is at the cap set
// with [WithMaxSize], in which case nothing is mutated.
func (q *Queue[T]) Push(item T) error {
	if q.maxSize >= 0 && len(q.items) == q.maxSize {
		return ErrCapacityExceeded
	}
	q.items = append(q.items, item)
	q.siftUp(len(q.items)-1, item)
	return nil
}

// Peek returns the highest-priority item without removing it. Returns
// [ErrEmptyQueue] when the queue holds no items.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[0], nil
}

// Pop removes and returns the highest-priority item, resetting its recorded
// position to [NotQueued]. Returns [ErrEmptyQueue] when the queue holds no
// items.
//
// Pop panics if the head item's recorded position is not 1 at the moment of
// removal. That can only happen when the supplied [Index] is broken or the
// queue was corrupted through it, never as a legitimate runtime condition.
func (q *Queue[T]) Pop() (T, error) {
	n := len(q.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	head := q.items[0]
	last := q.items[n-1]
	q.shrink()
	if n > 1 {
		q.siftDown(0, last)
	}
	if q.index.Position(head) != 1 {
		panic("dpq: index reported a stale position for the queue head")
	}
	q.index.SetPosition(head, NotQueued)
	return head, nil
}

// Update restores heap order after item's priority has been changed in
// place, updating the recorded positions of everything that moves. The heap
// was valid before the change, so at most one sift direction can relocate the
// item: Update tries upward first and falls back to downward when the item
// did not move. Returns [ErrNotQueued] when item's recorded position is
// [NotQueued].
func (q *Queue[T]) Update(item T) error {
	pos := q.index.Position(item)
	if pos == NotQueued {
		return ErrNotQueued
	}
	q.siftUp(pos-1, item)
	if q.index.Position(item) == pos {
		q.siftDown(pos-1, item)
	}
	return nil
}

// PushOrUpdate pushes item when its recorded position is [NotQueued] and
// updates it otherwise.
func (q *Queue[T]) PushOrUpdate(item T) error {
	if q.index.Position(item) == NotQueued {
		return q.Push(item)
	}
	return q.Update(item)
}

// Remove takes item out of the queue regardless of its position, resetting
// its recorded position to [NotQueued]. The vacated slot is refilled with the
// last element, which may need to move in either direction; as with
// [Queue.Update], at most one sift actually relocates it. Returns
// [ErrNotQueued] when item's recorded position is [NotQueued].
func (q *Queue[T]) Remove(item T) error {
	pos := q.index.Position(item)
	if pos == NotQueued {
		return ErrNotQueued
	}
	i := pos - 1
	n := len(q.items) - 1
	if i == n {
		q.shrink()
		q.index.SetPosition(item, NotQueued)
		return nil
	}
	last := q.items[n]
	q.shrink()
	q.siftUp(i, last)
	if q.index.Position(last) == i+1 {
		q.siftDown(i, last)
	}
	q.index.SetPosition(item, NotQueued)
	return nil
}

// Clear resets every queued item's recorded position to [NotQueued] and
// empties the queue, keeping the backing storage for reuse.
func (q *Queue[T]) Clear() {
	for _, item := range q.items {
		q.index.SetPosition(item, NotQueued)
	}
	clear(q.items)
	q.items = q.items[:0]
}

// ForEach applies visit to every queued item in unspecified order. The queue
// performs no re-heapify during or after iteration: when visit changes an
// item's priority, the caller must call [Queue.Update] for that item before
// relying on queue order again.
func (q *Queue[T]) ForEach(visit func(item T)) {
	for _, item := range q.items {
		visit(item)
	}
}

// siftUp moves item from slot i toward the root until its parent no longer
// sorts after it. Displaced parents shift down with their recorded positions
// updated; item itself is written exactly once, at its final slot.
func (q *Queue[T]) siftUp(i int, item T) {
	for i > 0 {
		parent := (i - 1) / 2
		p := q.items[parent]
		if q.compare(item, p) >= 0 {
			break
		}
		q.items[i] = p
		q.index.SetPosition(p, i+1)
		i = parent
	}
	q.items[i] = item
	q.index.SetPosition(item, i+1)
}

// siftDown moves item from slot i toward the leaves, pulling the smaller
// child up at each level, until neither child sorts before it.
func (q *Queue[T]) siftDown(i int, item T) {
	n := len(q.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && q.compare(q.items[right], q.items[child]) < 0 {
			child = right
		}
		c := q.items[child]
		if q.compare(item, c) <= 0 {
			break
		}
		q.items[i] = c
		q.index.SetPosition(c, i+1)
		i = child
	}
	q.items[i] = item
	q.index.SetPosition(item, i+1)
}

// shrink drops the last slot, zeroing it so the backing array does not retain
// a reference to the departed item.
func (q *Queue[T]) shrink() {
	n := len(q.items) - 1
	var zero T
	q.items[n] = zero
	q.items = q.items[:n]
}
