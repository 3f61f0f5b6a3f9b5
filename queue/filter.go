package queue

import (
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/list"
)

// Ascend removes every element that has a strictly smaller value anywhere to
// its right, leaving a non-decreasing queue. It returns the number removed.
func (q *Queue) Ascend() int {
	return q.filter(func(v, bound string) bool { return v > bound })
}

// Descend removes every element that has a strictly greater value anywhere to
// its right, leaving a non-increasing queue. It returns the number removed.
func (q *Queue) Descend() int {
	return q.filter(func(v, bound string) bool { return v < bound })
}

// filter sweeps from the tail. The survivors to the right of the cursor form
// a monotonic run whose nearest member is the bound every element is tested
// against.
func (q *Queue) filter(dominated func(v, bound string) bool) int {
	if q == nil || list.Empty(&q.head) {
		return 0
	}

	head := &q.head
	var removed int
	bound := element.Of(head.Prev()).Value
	for n := head.Prev().Prev(); n != head; {
		prev := n.Prev()
		if v := element.Of(n).Value; dominated(v, bound) {
			q.drop(n)
			removed++
		} else {
			bound = v
		}
		n = prev
	}
	return removed
}
