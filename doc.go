// Package heapdict implements a priority-queue-backed dictionary that maps
// unique keys to mutable priorities. It behaves like an ordinary key-value
// mapping augmented with heap-ordered extraction: both the lowest- and the
// highest-priority item can be read in O(1) and extracted in O(log n), while
// key lookups stay O(1) and iteration follows insertion order.
//
// The dictionary is backed by an interleaved min-max heap (Atkinson et al.,
// "Min-Max Heaps and Generalized Priority Queues", 1986) kept in sync with an
// insertion-ordered map. Even heap levels satisfy the min relation and odd
// levels the max relation, which is what makes both extremes reachable from
// the top of the heap without a second structure.
//
// Key features:
//   - Generic implementation supporting any comparable key type
//   - O(1) access to both the minimum and the maximum item
//   - O(log n) insertion, deletion, and priority updates
//   - O(1) key-based lookups
//   - Iteration in insertion order, unaffected by priority churn
//   - O(n) construction from an existing set of pairs
//
// Basic usage:
//
//	// Create a dictionary ordered by ascending priority
//	d := heapdict.New[string, int]()
//
//	// Add items
//	d.Set("task1", 5)
//	d.Set("task2", 3)
//	d.Set("task3", 7)
//
//	// Both ends are available in O(1)
//	lo, _ := d.MinItem() // {task2 3}
//	hi, _ := d.MaxItem() // {task3 7}
//
//	// Update priority of an existing key; its place in iteration
//	// order does not change
//	d.Set("task2", 9)
//
//	// Extract items in priority order
//	for d.Len() > 0 {
//	    item, _ := d.PopMinItem()
//	    fmt.Println(item.Key, item.Priority)
//	}
//
// Updating an existing key's priority keeps the key at its original position
// in iteration order; deleting a key and inserting it again moves it to the
// end, the same way a plain map with remembered insertion order would behave.
//
// A Dict is not safe for concurrent use. Callers that share one across
// goroutines must provide their own locking, and must not mutate the
// dictionary while an iteration started by Keys, Backward, or All is in
// progress.
package heapdict
