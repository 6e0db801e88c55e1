// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq_test

import (
	"fmt"

	dpq "github.com/csbence/dpq-go"
)

// Reprioritizing an item in place: change its priority, then call Update to
// restore heap order in O(log n).
func ExampleQueue_Update() {
	queue := dpq.New(
		dpq.FromLess(func(a, b *task) bool { return a.priority < b.priority }),
		dpq.ByPosition[*task]{},
	)

	compact := &task{name: "compact", priority: 30}
	queue.Push(compact)
	queue.Push(&task{name: "flush", priority: 10})
	queue.Push(&task{name: "snapshot", priority: 20})

	// Disk pressure: compaction suddenly matters most.
	compact.priority = 1
	queue.Update(compact)

	for !queue.Empty() {
		t, _ := queue.Pop()
		fmt.Println(t.name)
	}
	// Output:
	// compact
	// flush
	// snapshot
}

// Canceling pending work: Remove takes an item out of the queue no matter
// where it currently sits.
func ExampleQueue_Remove() {
	queue := dpq.New(
		dpq.FromLess(func(a, b *task) bool { return a.priority < b.priority }),
		dpq.ByPosition[*task]{},
	)

	snapshot := &task{name: "snapshot", priority: 20}
	queue.Push(&task{name: "compact", priority: 30})
	queue.Push(&task{name: "flush", priority: 10})
	queue.Push(snapshot)

	queue.Remove(snapshot)

	for !queue.Empty() {
		t, _ := queue.Pop()
		fmt.Println(t.name)
	}
	// Output:
	// flush
	// compact
}
