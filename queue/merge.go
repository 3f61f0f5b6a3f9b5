package queue

import (
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/list"
)

type lessFunc func(a, b string) bool

func ascending(a, b string) bool  { return a < b }
func descending(a, b string) bool { return a > b }

func order(descend bool) lessFunc {
	if descend {
		return descending
	}
	return ascending
}

// Merge moves every element of src into q at its sorted position. Both
// queues must already be sorted in the direction given by descend. src ends
// up empty, and the combined size is returned.
//
// Elements of q stay ahead of equal elements coming from src.
func (q *Queue) Merge(src *Queue, descend bool) (int, error) {
	if q == nil || src == nil {
		return -1, ErrNilQueue
	}
	if q == src {
		return q.Size(), nil
	}
	return merge(&q.head, &src.head, order(descend)), nil
}

// merge is linear in the size of both lists: the cursor into dest only ever
// moves forward, because each src element sorts no earlier than the last.
func merge(dest, src *list.Node[*element.Element], before lessFunc) int {
	total := list.Len(dest) + list.Len(src)

	cursor := dest.Next()
	for n := src.Next(); n != src; {
		next := n.Next()
		v := element.Of(n).Value
		for cursor != dest && !before(v, element.Of(cursor).Value) {
			cursor = cursor.Next()
		}
		// With the cursor on the sentinel this appends at the tail, and the
		// cursor stays past the new tail.
		list.MoveTail(n, cursor)
		n = next
	}
	return total
}
