package queue

import (
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/list"
)

// Sort orders the queue non-decreasingly, or non-increasingly when descend is
// set. It is a stable top-down merge sort that only relinks nodes.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}
	mergeSort(&q.head, order(descend))
}

func mergeSort(head *list.Node[*element.Element], before lessFunc) {
	if list.Empty(head) || list.Singular(head) {
		return
	}

	slow := head
	for fast := head.Next(); fast != head && fast.Next() != head; fast = fast.Next().Next() {
		slow = slow.Next()
	}

	var front list.Node[*element.Element]
	list.CutPosition(&front, head, slow)

	mergeSort(&front, before)
	mergeSort(head, before)

	// The front half is the destination so that ties keep their input order.
	merge(&front, head, before)
	list.Splice(&front, head)
}
