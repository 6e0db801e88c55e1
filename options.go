// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq

type options struct {
	sliceCap int
	maxSize  int
}

// Option represents the options that can be passed to [New].
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice that backs the heap,
// avoiding growth allocations when the eventual size is known up front.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// WithMaxSize caps the number of items the queue will accept: [Queue.Push]
// returns [ErrCapacityExceeded] once the queue holds n items. A cap of zero
// rejects every push. Queues constructed without this option grow without
// bound. The cap is a safety valve for bounded-memory use, not a performance
// knob.
func WithMaxSize(n int) Option {
	if n < 0 {
		panic("maximum size may not be negative")
	}
	return func(o *options) {
		o.maxSize = n
	}
}
