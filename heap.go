package heapdict

import (
	"math/bits"
)

// The heap array is an interleaved min-max heap: nodes on even levels sort
// before their descendants and nodes on odd levels sort after them. Position
// 0 is the root, position i's children are at 2i+1 and 2i+2. The sift
// routines follow Atkinson et al., "Min-Max Heaps and Generalized Priority
// Queues" (1986).

func level(i int) int { return bits.Len(uint(i)+1) - 1 }

func onMinLevel(i int) bool { return level(i)%2 == 0 }

func lchild(i int) int { return 2*i + 1 }

func rchild(i int) int { return 2*i + 2 }

func parent(i int) int { return (i - 1) / 2 }

func grandparent(i int) int { return parent(parent(i)) }

// lessAt compares the priorities at heap positions i and j.
func (d *Dict[K, P]) lessAt(i, j int) bool {
	return d.lessF(d.heap[i].priority, d.heap[j].priority)
}

// swap exchanges heap positions i and j and keeps the entries' index
// bookkeeping in agreement with the array.
func (d *Dict[K, P]) swap(i, j int) {
	d.heap[i], d.heap[j] = d.heap[j], d.heap[i]
	d.heap[i].index = i
	d.heap[j].index = j
}

// init restores the heap invariant over the whole array in O(n) by sifting
// every internal node down, starting from the middle of the array.
func (d *Dict[K, P]) init() {
	n := len(d.heap)
	for i := n/2 - 1; i >= 0; i-- {
		d.down(i, n)
	}
}

// fix restores the invariant after the priority at position i has changed.
// Exactly one direction can be violated, so a sift toward the leaves is
// attempted first and a sift toward the root only if nothing moved down.
func (d *Dict[K, P]) fix(i int) {
	if !d.down(i, len(d.heap)) {
		d.up(i)
	}
}

// removeAt removes the entry at position i from the heap array by swapping
// it with the last slot and shrinking the array. The element swapped into
// slot i may be out of order with either its ancestors or its descendants,
// so both directions are re-checked.
func (d *Dict[K, P]) removeAt(i int) {
	n := len(d.heap) - 1
	if i != n {
		d.swap(i, n)
	}
	d.heap[n] = nil
	d.heap = d.heap[:n]
	if i != n {
		d.fix(i)
	}
}

// maxIndex returns the position of the item that sorts last. For one item
// that is the root; otherwise it is the larger of the root's children, which
// sit on the first max level. The heap must not be empty.
func (d *Dict[K, P]) maxIndex() int {
	switch n := len(d.heap); {
	case n == 1:
		return 0
	case n == 2:
		return 1
	default:
		if d.lessAt(1, 2) {
			return 2
		}
		return 1
	}
}

// down sifts the element at position i toward the leaves within the first n
// positions and reports whether it moved. On a min level the element trades
// places with the smallest of its children and grandchildren, on a max level
// with the largest; after landing on a grandchild slot the skipped parent is
// re-checked.
func (d *Dict[K, P]) down(i, n int) bool {
	min := onMinLevel(i)
	i0 := i
	for {
		m := i

		l := lchild(i)
		if l >= n || l < 0 /* overflow */ {
			break
		}
		if d.lessAt(l, m) == min {
			m = l
		}

		r := rchild(i)
		if r < n && d.lessAt(r, m) == min {
			m = r
		}

		// grandchildren are contiguous at lchild(l)..rchild(r)
		for g := lchild(l); g < n && g <= rchild(r); g++ {
			if d.lessAt(g, m) == min {
				m = g
			}
		}

		if m == i {
			break
		}

		d.swap(i, m)

		if m == l || m == r {
			break
		}

		// m is a grandchild slot; the parent in between may now be
		// out of order with the element that landed there
		p := parent(m)
		if d.lessAt(p, m) == min {
			d.swap(m, p)
		}
		i = m
	}
	return i > i0
}

// up sifts the element at position i toward the root. A freshly appended
// leaf may first belong on the opposite kind of level, in which case it
// trades places with its parent; afterwards it bubbles along grandparent
// links, which preserve the level kind.
func (d *Dict[K, P]) up(i int) {
	min := onMinLevel(i)

	if i > 0 {
		p := parent(i)
		if d.lessAt(p, i) == min {
			d.swap(i, p)
			min = !min
			i = p
		}
	}

	for i > 2 {
		g := grandparent(i)
		if d.lessAt(i, g) != min {
			return
		}
		d.swap(i, g)
		i = g
	}
}
