package datastruct

import (
	"iter"
	"sync/atomic"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

var listIDs atomic.Uint64

// LinkedList is a circular doubly linked list.
//
// The zero value is an empty list ready to use.
// Nodes remember which list owns them,
// so a node can't be linked into two lists and a foreign node can't be used as an anchor.
type LinkedList[T any] struct {
	id       uint64
	head     *Node[T]
	length   int
	comparer compare.Comparer[T]
}

// Node is an element of a LinkedList.
// A node created with NewNode is detached until it is added to a list.
type Node[T any] struct {
	Value T

	list uint64
	next *Node[T]
	prev *Node[T]
}

func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the following node.
// The list is circular, so the next node of the last one is the first.
// Detached nodes have no neighbours.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, which for the first node is the last one.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Detached reports whether the node belongs to no list.
func (n *Node[T]) Detached() bool { return n.list == 0 }

var _ ds.Collection[any] = (*LinkedList[any])(nil)

func NewLinkedList[T any](opts ...Option[T]) *LinkedList[T] {
	c := option.ToConfig(opts)
	ll := &LinkedList[T]{comparer: c.Comparer}
	for v := range c.seed() {
		ll.AddLast(v)
	}
	return ll
}

func (ll *LinkedList[T]) ident() uint64 {
	if ll.id == 0 {
		ll.id = listIDs.Add(1)
	}
	return ll.id
}

func (ll *LinkedList[T]) cmp() compare.Comparer[T] {
	if ll.comparer == nil {
		ll.comparer = compare.Default[T]()
	}
	return ll.comparer
}

func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// First returns the head node, or nil when the list is empty.
func (ll *LinkedList[T]) First() *Node[T] {
	return ll.head
}

// Last returns the tail node, or nil when the list is empty.
func (ll *LinkedList[T]) Last() *Node[T] {
	if ll.head == nil {
		return nil
	}
	return ll.head.prev
}

func (ll *LinkedList[T]) AddFirst(v T) *Node[T] {
	n := NewNode(v)
	ll.addFirst(n)
	return n
}

func (ll *LinkedList[T]) AddLast(v T) *Node[T] {
	n := NewNode(v)
	ll.addLast(n)
	return n
}

// AddNodeFirst links a detached node at the start of the list.
func (ll *LinkedList[T]) AddNodeFirst(n *Node[T]) error {
	if err := ll.checkDetached(n); err != nil {
		return err
	}
	ll.addFirst(n)
	return nil
}

// AddNodeLast links a detached node at the end of the list.
func (ll *LinkedList[T]) AddNodeLast(n *Node[T]) error {
	if err := ll.checkDetached(n); err != nil {
		return err
	}
	ll.addLast(n)
	return nil
}

// AddBefore inserts the value before the anchor node, which must belong to this list.
func (ll *LinkedList[T]) AddBefore(anchor *Node[T], v T) (*Node[T], error) {
	n := NewNode(v)
	if err := ll.AddNodeBefore(anchor, n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddAfter inserts the value after the anchor node, which must belong to this list.
func (ll *LinkedList[T]) AddAfter(anchor *Node[T], v T) (*Node[T], error) {
	n := NewNode(v)
	if err := ll.AddNodeAfter(anchor, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (ll *LinkedList[T]) AddNodeBefore(anchor, n *Node[T]) error {
	if err := ll.checkOwned(anchor); err != nil {
		return err
	}
	if err := ll.checkDetached(n); err != nil {
		return err
	}
	ll.insertBefore(anchor, n)
	if anchor == ll.head {
		ll.head = n
	}
	return nil
}

func (ll *LinkedList[T]) AddNodeAfter(anchor, n *Node[T]) error {
	if err := ll.checkOwned(anchor); err != nil {
		return err
	}
	if err := ll.checkDetached(n); err != nil {
		return err
	}
	ll.insertBefore(anchor.next, n)
	return nil
}

// Remove unlinks a node of this list.
// The removed node is detached and can be added to any list again.
func (ll *LinkedList[T]) Remove(n *Node[T]) error {
	if err := ll.checkOwned(n); err != nil {
		return err
	}
	ll.unlink(n)
	return nil
}

// RemoveValue removes the first node whose value equals v.
func (ll *LinkedList[T]) RemoveValue(v T) bool {
	n := ll.Find(v)
	if n == nil {
		return false
	}
	ll.unlink(n)
	return true
}

// RemoveFirst removes the head and returns its value.
// It fails with errorkit.ErrEmptyCollection when the list is empty.
func (ll *LinkedList[T]) RemoveFirst() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, errorkit.ErrEmptyCollection
	}
	n := ll.head
	ll.unlink(n)
	return n.Value, nil
}

// RemoveLast removes the tail and returns its value.
// It fails with errorkit.ErrEmptyCollection when the list is empty.
func (ll *LinkedList[T]) RemoveLast() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, errorkit.ErrEmptyCollection
	}
	n := ll.head.prev
	ll.unlink(n)
	return n.Value, nil
}

// Find returns the first node whose value equals v, or nil.
func (ll *LinkedList[T]) Find(v T) *Node[T] {
	cmp := ll.cmp()
	n := ll.head
	for range ll.length {
		if cmp.Equal(n.Value, v) {
			return n
		}
		n = n.next
	}
	return nil
}

// FindLast returns the last node whose value equals v, or nil.
func (ll *LinkedList[T]) FindLast(v T) *Node[T] {
	if ll.head == nil {
		return nil
	}
	cmp := ll.cmp()
	n := ll.head.prev
	for range ll.length {
		if cmp.Equal(n.Value, v) {
			return n
		}
		n = n.prev
	}
	return nil
}

func (ll *LinkedList[T]) Contains(v T) bool {
	return ll.Find(v) != nil
}

// Clear detaches every node.
func (ll *LinkedList[T]) Clear() {
	n := ll.head
	for range ll.length {
		next := n.next
		n.list, n.next, n.prev = 0, nil, nil
		n = next
	}
	ll.head = nil
	ll.length = 0
}

// Append adds the values at the end of the list, in order.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.AddLast(v)
	}
}

// Prepend adds the values at the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.AddFirst(vs[i])
	}
}

// Shift removes and returns the first value.
func (ll *LinkedList[T]) Shift() (T, bool) {
	v, err := ll.RemoveFirst()
	return v, err == nil
}

// Pop removes and returns the last value.
func (ll *LinkedList[T]) Pop() (T, bool) {
	v, err := ll.RemoveLast()
	return v, err == nil
}

// Lookup returns the value at the index, walking from the closer end.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	n := ll.head
	if index < ll.length/2 {
		for range index {
			n = n.next
		}
	} else {
		for range ll.length - index {
			n = n.prev
		}
	}
	return n.Value, true
}

func (ll *LinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, ll.Len())
	for v := range ll.Values() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return iterkit.ToSeq[T](ll)
}

func (ll *LinkedList[T]) CopyTo(dst []T, index int) error {
	return copyTo(dst, index, ll.Len(), ll.Values())
}

// Cursor walks the list from the head.
//
// The cursor moves to the following node before it yields the current value,
// and it stops once it arrives back at the list's head or at a detached node.
// Removing the node that was just yielded is therefore safe.
func (ll *LinkedList[T]) Cursor() iterkit.Cursor[T] {
	var (
		node    *Node[T]
		started bool
	)
	return iterkit.CursorFunc[T](func() (T, bool) {
		if !started {
			started = true
			node = ll.head
		}
		if node == nil || node.list != ll.id {
			node = nil
			var zero T
			return zero, false
		}
		v := node.Value
		node = node.next
		if node == ll.head {
			node = nil
		}
		return v, true
	})
}

func (ll *LinkedList[T]) checkOwned(n *Node[T]) error {
	if n == nil {
		return errorkit.ErrInvalidArgument.F("node is nil")
	}
	if n.list == 0 || n.list != ll.id {
		return errorkit.ErrInvalidNodeOwnership
	}
	return nil
}

func (ll *LinkedList[T]) checkDetached(n *Node[T]) error {
	if n == nil {
		return errorkit.ErrInvalidArgument.F("node is nil")
	}
	if n.list != 0 {
		return errorkit.ErrInvalidNodeOwnership
	}
	return nil
}

func (ll *LinkedList[T]) addFirst(n *Node[T]) {
	ll.addLast(n)
	ll.head = n
}

func (ll *LinkedList[T]) addLast(n *Node[T]) {
	if ll.head == nil {
		n.list = ll.ident()
		n.next, n.prev = n, n
		ll.head = n
		ll.length++
		return
	}
	ll.insertBefore(ll.head, n)
}

func (ll *LinkedList[T]) insertBefore(anchor, n *Node[T]) {
	n.list = ll.ident()
	n.next = anchor
	n.prev = anchor.prev
	anchor.prev.next = n
	anchor.prev = n
	ll.length++
}

func (ll *LinkedList[T]) unlink(n *Node[T]) {
	if n.next == n {
		ll.head = nil
	} else {
		n.next.prev = n.prev
		n.prev.next = n.next
		if ll.head == n {
			ll.head = n.next
		}
	}
	n.list, n.next, n.prev = 0, nil, nil
	ll.length--
}
