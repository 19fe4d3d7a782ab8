package main

import "sync/atomic"

// TaskQueue hands out source-file indices to workers. The item list is fixed
// at construction; only the cursor moves, via a single atomic increment, so
// no index is ever claimed twice and no claim ever blocks.
type TaskQueue struct {
	items  []string
	cursor atomic.Uint64
}

func NewTaskQueue(items []string) *TaskQueue {
	return &TaskQueue{items: items}
}

// ClaimNext returns the next unclaimed index, or false once the queue is
// exhausted. Overshooting cursor values past the end are simply discarded;
// indices are never reused, so no compensating decrement is needed.
func (q *TaskQueue) ClaimNext() (int, bool) {
	i := q.cursor.Add(1) - 1
	if i >= uint64(len(q.items)) {
		return 0, false
	}
	return int(i), true
}

func (q *TaskQueue) Len() int {
	return len(q.items)
}

func (q *TaskQueue) Item(i int) string {
	return q.items[i]
}
