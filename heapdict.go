package heapdict

import (
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/constraints"
)

// Pair is a single (key, priority) item of a Dict.
type Pair[K comparable, P any] struct {
	Key      K
	Priority P
}

// entry is the node shared by the dictionary and heap views: the ordered map
// stores key -> *entry, the heap array stores position -> *entry, and index
// records the entry's current heap position so both views always agree.
type entry[K comparable, P any] struct {
	key      K
	priority P
	index    int
}

// Dict is a priority-queue-backed dictionary mapping unique keys to mutable
// priorities. The zero value is not usable; use one of the constructors.
type Dict[K comparable, P any] struct {
	entries *orderedmap.OrderedMap[K, *entry[K, P]]
	heap    []*entry[K, P]
	lessF   func(a, b P) bool // returns true if a sorts before b
}

func ascending[P constraints.Ordered](a, b P) bool { return a < b }

func descending[P constraints.Ordered](a, b P) bool { return a > b }

// New creates an empty dictionary whose primary order is ascending priority:
// PopItem extracts the smallest priority first.
func New[K comparable, P constraints.Ordered]() *Dict[K, P] {
	return NewFunc[K](ascending[P])
}

// NewMax creates an empty dictionary whose primary order is descending
// priority: PopItem extracts the largest priority first. MinItem and MaxItem
// follow the inverted order, so MinItem reports the largest priority.
func NewMax[K comparable, P constraints.Ordered]() *Dict[K, P] {
	return NewFunc[K](descending[P])
}

// NewFunc creates an empty dictionary ordered by the given comparator. The
// comparator must describe a strict total order; less(a, b) reports whether a
// sorts before b.
func NewFunc[K comparable, P any](less func(a, b P) bool) *Dict[K, P] {
	return &Dict[K, P]{
		entries: orderedmap.New[K, *entry[K, P]](),
		heap:    make([]*entry[K, P], 0),
		lessF:   less,
	}
}

// FromPairs creates a dictionary from a sequence of pairs in O(n). A key
// occurring more than once keeps its first-seen position in insertion order
// and the priority of its last occurrence.
func FromPairs[K comparable, P constraints.Ordered](pairs ...Pair[K, P]) *Dict[K, P] {
	return FromPairsFunc[K](ascending[P], pairs...)
}

// FromPairsFunc is FromPairs with an explicit comparator.
func FromPairsFunc[K comparable, P any](less func(a, b P) bool, pairs ...Pair[K, P]) *Dict[K, P] {
	d := NewFunc[K](less)
	for _, p := range pairs {
		if e, ok := d.entries.Get(p.Key); ok {
			e.priority = p.Priority
			continue
		}
		e := &entry[K, P]{key: p.Key, priority: p.Priority, index: len(d.heap)}
		d.entries.Set(p.Key, e)
		d.heap = append(d.heap, e)
	}
	d.init()
	return d
}

// FromMap creates a dictionary from a plain map in O(n). Go maps have no
// iteration order, so the insertion order of the result is unspecified.
func FromMap[K comparable, P constraints.Ordered](m map[K]P) *Dict[K, P] {
	return FromMapFunc(ascending[P], m)
}

// FromMapFunc is FromMap with an explicit comparator.
func FromMapFunc[K comparable, P any](less func(a, b P) bool, m map[K]P) *Dict[K, P] {
	pairs := make([]Pair[K, P], 0, len(m))
	for k, p := range m {
		pairs = append(pairs, Pair[K, P]{Key: k, Priority: p})
	}
	return FromPairsFunc(less, pairs...)
}

// FromKeys creates a dictionary with the given keys, all mapped to the same
// priority. Duplicate keys collapse into their first occurrence.
func FromKeys[K comparable, P constraints.Ordered](keys []K, priority P) *Dict[K, P] {
	pairs := make([]Pair[K, P], 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair[K, P]{Key: k, Priority: priority})
	}
	return FromPairs(pairs...)
}

// Len returns the number of items in the dictionary.
func (d *Dict[K, P]) Len() int {
	return len(d.heap)
}

// Contains reports whether the key is present.
func (d *Dict[K, P]) Contains(key K) bool {
	_, ok := d.entries.Get(key)
	return ok
}

// Get returns the priority stored for the key.
func (d *Dict[K, P]) Get(key K) (P, bool) {
	e, ok := d.entries.Get(key)
	if !ok {
		var zero P
		return zero, false
	}
	return e.priority, true
}

// GetOr returns the priority stored for the key, or def if the key is absent.
func (d *Dict[K, P]) GetOr(key K, def P) P {
	if p, ok := d.Get(key); ok {
		return p
	}
	return def
}

// Set adds a new key or updates an existing key's priority in O(log n).
//
// An existing key keeps its position in insertion order; only its priority
// and heap placement change. A new key is appended to the end of insertion
// order. If the key is an interface holding an uncomparable value, the map
// operation panics before any view has been touched, leaving the dictionary
// unchanged.
func (d *Dict[K, P]) Set(key K, priority P) {
	if e, ok := d.entries.Get(key); ok {
		e.priority = priority
		d.fix(e.index)
		return
	}
	e := &entry[K, P]{key: key, priority: priority, index: len(d.heap)}
	d.entries.Set(key, e)
	d.heap = append(d.heap, e)
	d.up(e.index)
}

// Delete removes the key in O(log n) and reports whether it was present.
func (d *Dict[K, P]) Delete(key K) bool {
	_, ok := d.Pop(key)
	return ok
}

// Pop removes the key in O(log n) and returns the priority it held.
func (d *Dict[K, P]) Pop(key K) (P, bool) {
	e, ok := d.entries.Get(key)
	if !ok {
		var zero P
		return zero, false
	}
	d.entries.Delete(key)
	d.removeAt(e.index)
	return e.priority, true
}

// MinItem returns the item that sorts first without removing it. O(1).
func (d *Dict[K, P]) MinItem() (Pair[K, P], bool) {
	if len(d.heap) == 0 {
		var zero Pair[K, P]
		return zero, false
	}
	return d.pairAt(0), true
}

// MinItemOr is MinItem returning def when the dictionary is empty.
func (d *Dict[K, P]) MinItemOr(def Pair[K, P]) Pair[K, P] {
	if item, ok := d.MinItem(); ok {
		return item
	}
	return def
}

// MaxItem returns the item that sorts last without removing it. O(1).
func (d *Dict[K, P]) MaxItem() (Pair[K, P], bool) {
	if len(d.heap) == 0 {
		var zero Pair[K, P]
		return zero, false
	}
	return d.pairAt(d.maxIndex()), true
}

// MaxItemOr is MaxItem returning def when the dictionary is empty.
func (d *Dict[K, P]) MaxItemOr(def Pair[K, P]) Pair[K, P] {
	if item, ok := d.MaxItem(); ok {
		return item
	}
	return def
}

// PopMinItem removes and returns the item that sorts first. O(log n).
func (d *Dict[K, P]) PopMinItem() (Pair[K, P], bool) {
	if len(d.heap) == 0 {
		var zero Pair[K, P]
		return zero, false
	}
	return d.popAt(0), true
}

// PopMinItemOr is PopMinItem returning def when the dictionary is empty.
func (d *Dict[K, P]) PopMinItemOr(def Pair[K, P]) Pair[K, P] {
	if item, ok := d.PopMinItem(); ok {
		return item
	}
	return def
}

// PopMaxItem removes and returns the item that sorts last. O(log n).
func (d *Dict[K, P]) PopMaxItem() (Pair[K, P], bool) {
	if len(d.heap) == 0 {
		var zero Pair[K, P]
		return zero, false
	}
	return d.popAt(d.maxIndex()), true
}

// PopMaxItemOr is PopMaxItem returning def when the dictionary is empty.
func (d *Dict[K, P]) PopMaxItemOr(def Pair[K, P]) Pair[K, P] {
	if item, ok := d.PopMaxItem(); ok {
		return item
	}
	return def
}

// PopItem removes and returns the front item of the dictionary's primary
// order: the smallest priority for New, the largest for NewMax. O(log n).
func (d *Dict[K, P]) PopItem() (Pair[K, P], bool) {
	return d.PopMinItem()
}

// Keys returns an iterator over the keys in insertion order. The dictionary
// must not be mutated while the iteration is in progress.
func (d *Dict[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Backward returns an iterator over the keys in reverse insertion order. The
// dictionary must not be mutated while the iteration is in progress.
func (d *Dict[K, P]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := d.entries.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// All returns an iterator over (key, priority) pairs in insertion order. The
// dictionary must not be mutated while the iteration is in progress.
func (d *Dict[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value.priority) {
				return
			}
		}
	}
}

// Items returns the items as a slice in insertion order.
func (d *Dict[K, P]) Items() []Pair[K, P] {
	items := make([]Pair[K, P], 0, len(d.heap))
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Pair[K, P]{Key: pair.Key, Priority: pair.Value.priority})
	}
	return items
}

// Clear removes all items in O(n) without per-item re-sifting.
func (d *Dict[K, P]) Clear() {
	d.entries = orderedmap.New[K, *entry[K, P]]()
	clear(d.heap)
	d.heap = d.heap[:0]
}

// Copy returns an independent clone in O(n). Keys and priorities themselves
// are not deep-copied; the heap shape is carried over without re-sifting.
func (d *Dict[K, P]) Copy() *Dict[K, P] {
	c := NewFunc[K](d.lessF)
	c.heap = make([]*entry[K, P], len(d.heap))
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		clone := &entry[K, P]{key: e.key, priority: e.priority, index: e.index}
		c.entries.Set(clone.key, clone)
		c.heap[clone.index] = clone
	}
	return c
}

// Union returns a new dictionary holding the receiver's items followed by
// other's items; on key collision the priority from other wins while the
// key keeps the position it already had in the receiver. The result uses the
// receiver's comparator.
func (d *Dict[K, P]) Union(other *Dict[K, P]) *Dict[K, P] {
	u := d.Copy()
	for k, p := range other.All() {
		u.Set(k, p)
	}
	return u
}

// UnionMap is Union with a plain map as the right operand. For the symmetric
// case with the map on the left, combine FromMap with Union.
func (d *Dict[K, P]) UnionMap(m map[K]P) *Dict[K, P] {
	u := d.Copy()
	for k, p := range m {
		u.Set(k, p)
	}
	return u
}

// Equal reports whether both dictionaries hold the same keys with equivalent
// priorities, irrespective of insertion order or heap shape. Two priorities
// are equivalent when neither sorts before the other under the receiver's
// comparator.
func (d *Dict[K, P]) Equal(other *Dict[K, P]) bool {
	if d.Len() != other.Len() {
		return false
	}
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		o, ok := other.entries.Get(pair.Key)
		if !ok || !d.equivalent(pair.Value.priority, o.priority) {
			return false
		}
	}
	return true
}

// EqualMap reports whether the dictionary holds the same (key, priority)
// pairs as a plain map.
func (d *Dict[K, P]) EqualMap(m map[K]P) bool {
	if d.Len() != len(m) {
		return false
	}
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		p, ok := m[pair.Key]
		if !ok || !d.equivalent(pair.Value.priority, p) {
			return false
		}
	}
	return true
}

func (d *Dict[K, P]) equivalent(a, b P) bool {
	return !d.lessF(a, b) && !d.lessF(b, a)
}

// String renders the dictionary in insertion order, e.g.
// heapdict.Dict({a: 1, b: 2}). The output is deterministic for a given
// insertion order.
func (d *Dict[K, P]) String() string {
	if len(d.heap) == 0 {
		return "heapdict.Dict()"
	}
	var b strings.Builder
	b.WriteString("heapdict.Dict({")
	first := true
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", pair.Key, pair.Value.priority)
	}
	b.WriteString("})")
	return b.String()
}

func (d *Dict[K, P]) pairAt(i int) Pair[K, P] {
	e := d.heap[i]
	return Pair[K, P]{Key: e.key, Priority: e.priority}
}

// popAt removes the entry at heap position i from all views.
func (d *Dict[K, P]) popAt(i int) Pair[K, P] {
	e := d.heap[i]
	d.entries.Delete(e.key)
	d.removeAt(i)
	return Pair[K, P]{Key: e.key, Priority: e.priority}
}
