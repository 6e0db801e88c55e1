// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrCapacityExceeded is returned by [Queue.Push] when the queue already
// holds the maximum number of items configured with [WithMaxSize].
const ErrCapacityExceeded = constError("queue reached its maximum capacity")

// ErrEmptyQueue is returned by [Queue.Pop] and [Queue.Peek] when the queue
// holds no items.
const ErrEmptyQueue = constError("queue is empty")

// ErrNotQueued is returned by [Queue.Update] and [Queue.Remove] when the
// item's recorded position is [NotQueued].
const ErrNotQueued = constError("item is not in the queue")
