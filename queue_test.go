package main

import (
	"fmt"
	"sync"
	"testing"
)

func TestTaskQueueClaimsEachIndexExactlyOnce(t *testing.T) {
	const n = 5000
	const workers = 16

	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("file-%d.jpg", i)
	}
	q := NewTaskQueue(items)

	var mu sync.Mutex
	counts := make(map[int]int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i, ok := q.ClaimNext()
				if !ok {
					return
				}
				mu.Lock()
				counts[i]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(counts) != n {
		t.Fatalf("claimed %d distinct indices, want %d", len(counts), n)
	}
	for i := 0; i < n; i++ {
		if counts[i] != 1 {
			t.Errorf("index %d claimed %d times, want exactly once", i, counts[i])
		}
	}
}

func TestTaskQueueEmpty(t *testing.T) {
	q := NewTaskQueue(nil)
	if _, ok := q.ClaimNext(); ok {
		t.Fatal("empty queue handed out an index")
	}
	if q.Len() != 0 {
		t.Fatalf("Len = %d, want 0", q.Len())
	}
}

func TestTaskQueueStaysExhausted(t *testing.T) {
	q := NewTaskQueue([]string{"a.jpg"})

	i, ok := q.ClaimNext()
	if !ok || i != 0 {
		t.Fatalf("first claim = (%d, %v), want (0, true)", i, ok)
	}
	for attempt := 0; attempt < 10; attempt++ {
		if _, ok := q.ClaimNext(); ok {
			t.Fatal("exhausted queue handed out an index")
		}
	}
}

func TestTaskQueueItem(t *testing.T) {
	q := NewTaskQueue([]string{"a.jpg", "b.png"})
	if got := q.Item(1); got != "b.png" {
		t.Fatalf("Item(1) = %q, want %q", got, "b.png")
	}
}
