package engine

import (
	"iter"

	"go.llib.dev/sequential/pkg/tag"
)

// List is a doubly linked list kept in an arena.
// Nodes address each other by their slot in the arena, and freed slots are reused by later inserts.
// The zero value is an empty list ready to use.
type List[T any] struct {
	nodes  []llNode[T]
	free   []int
	head   int
	tail   int
	length int
}

var _ Engine[any] = (*List[any])(nil)

const nilSlot = -1

type llNode[T any] struct {
	data T
	prev int
	next int
}

func (ll *List[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *List[T]) Supports(t tag.Tag) bool {
	switch t {
	case tag.Append, tag.Prepend, tag.Before, tag.After, tag.Replace, tag.Index:
		return true
	default:
		return false
	}
}

func (ll *List[T]) Append(v T) {
	ll.insert(ll.last(), nilSlot, v)
}

func (ll *List[T]) Prepend(v T) {
	ll.insert(nilSlot, ll.first(), v)
}

func (ll *List[T]) InsertBefore(i int, v T) bool {
	slot, ok := ll.slotAt(i)
	if !ok {
		return false
	}
	ll.insert(ll.nodes[slot].prev, slot, v)
	return true
}

func (ll *List[T]) InsertAfter(i int, v T) bool {
	slot, ok := ll.slotAt(i)
	if !ok {
		return false
	}
	ll.insert(slot, ll.nodes[slot].next, v)
	return true
}

func (ll *List[T]) Lookup(i int) (T, bool) {
	slot, ok := ll.slotAt(i)
	if !ok {
		var zero T
		return zero, false
	}
	return ll.nodes[slot].data, true
}

func (ll *List[T]) Swap(i int, v T) (T, bool) {
	slot, ok := ll.slotAt(i)
	if !ok {
		var zero T
		return zero, false
	}
	old := ll.nodes[slot].data
	ll.nodes[slot].data = v
	return old, true
}

func (ll *List[T]) Delete(i int) (T, bool) {
	slot, ok := ll.slotAt(i)
	if !ok {
		var zero T
		return zero, false
	}
	n := ll.nodes[slot]
	if n.prev == nilSlot {
		ll.head = n.next
	} else {
		ll.nodes[n.prev].next = n.next
	}
	if n.next == nilSlot {
		ll.tail = n.prev
	} else {
		ll.nodes[n.next].prev = n.prev
	}
	ll.release(slot)
	ll.length--
	return n.data, true
}

func (ll *List[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil || ll.length == 0 {
			return
		}
		var i int
		for slot := ll.head; slot != nilSlot; slot = ll.nodes[slot].next {
			if !yield(i, ll.nodes[slot].data) {
				return
			}
			i++
		}
	}
}

func (ll *List[T]) Slice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *List[T]) first() int {
	if ll.length == 0 {
		return nilSlot
	}
	return ll.head
}

func (ll *List[T]) last() int {
	if ll.length == 0 {
		return nilSlot
	}
	return ll.tail
}

// insert links a new node between the prev and next slots.
// nilSlot on either side means the new node becomes the head or the tail.
func (ll *List[T]) insert(prev, next int, v T) {
	slot := ll.alloc(llNode[T]{data: v, prev: prev, next: next})
	if prev == nilSlot {
		ll.head = slot
	} else {
		ll.nodes[prev].next = slot
	}
	if next == nilSlot {
		ll.tail = slot
	} else {
		ll.nodes[next].prev = slot
	}
	ll.length++
}

func (ll *List[T]) alloc(n llNode[T]) int {
	if last := len(ll.free) - 1; 0 <= last {
		slot := ll.free[last]
		ll.free = ll.free[:last]
		ll.nodes[slot] = n
		return slot
	}
	ll.nodes = append(ll.nodes, n)
	return len(ll.nodes) - 1
}

func (ll *List[T]) release(slot int) {
	ll.nodes[slot] = llNode[T]{prev: nilSlot, next: nilSlot}
	ll.free = append(ll.free, slot)
}

// slotAt walks to the i-th node from whichever end is closer.
func (ll *List[T]) slotAt(i int) (int, bool) {
	if ll == nil || i < 0 || ll.length <= i {
		return nilSlot, false
	}
	if i < ll.length/2 {
		slot := ll.head
		for ; 0 < i; i-- {
			slot = ll.nodes[slot].next
		}
		return slot, true
	}
	slot := ll.tail
	for j := ll.length - 1; i < j; j-- {
		slot = ll.nodes[slot].prev
	}
	return slot, true
}
