package queue

import (
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/list"
)

// DeleteMid removes and releases the element at index size/2 (0-indexed).
// There is nothing to delete in an empty or nil queue, which counts as success.
func (q *Queue) DeleteMid() error {
	if q == nil || list.Empty(&q.head) {
		return nil
	}

	head := &q.head
	slow := head.Next()
	for fast := head.Next(); fast != head && fast.Next() != head; fast = fast.Next().Next() {
		slow = slow.Next()
	}

	q.drop(slow)
	return nil
}

// DeleteDup expects a sorted queue and removes every element whose value
// equals the value of a neighbor, keeping only values that occur once.
func (q *Queue) DeleteDup() error {
	if q == nil {
		return ErrNilQueue
	}

	head := &q.head
	var dropNext bool
	for n := head.Next(); n != head; {
		next := n.Next()
		match := next != head && element.Of(n).Value == element.Of(next).Value
		if match || dropNext {
			q.drop(n)
		}
		dropNext = match
		n = next
	}
	return nil
}

// Swap exchanges every two adjacent elements by relinking them. A trailing
// odd element stays where it is.
func (q *Queue) Swap() {
	if q == nil {
		return
	}

	head := &q.head
	for first := head.Next(); first != head && first.Next() != head; first = first.Next() {
		list.MoveTail(first.Next(), first)
	}
}

// Reverse mirrors the order of the elements.
func (q *Queue) Reverse() {
	if q == nil || list.Empty(&q.head) {
		return
	}
	list.Reverse(&q.head)
}

// ReverseK reverses every full run of k consecutive elements. A final run
// shorter than k is left as it is, so a k larger than the queue is a no-op.
func (q *Queue) ReverseK(k int) {
	if q == nil || k <= 1 {
		return
	}

	head := &q.head
	groups := list.Len(head) / k

	anchor := head
	for ; groups > 0; groups-- {
		first := anchor.Next()
		for i := 1; i < k; i++ {
			list.MoveHead(first.Next(), anchor)
		}
		anchor = first
	}
}
