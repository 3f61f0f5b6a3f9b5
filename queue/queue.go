// Package queue implements a string queue on top of a circular, sentinel
// anchored list, along with the in-place transforms, the two-way merge and
// the merge sort that operate on it.
//
// A nil *Queue stands for a queue that does not exist. It is distinct from an
// empty queue: Size reports -1 for the former and 0 for the latter.
//
// Queues are not safe for concurrent use.
package queue

import (
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/list"
	"github.com/pkg/errors"
)

// Queue is identified by its sentinel and owns every element linked into it.
type Queue struct {
	head    list.Node[*element.Element]
	factory element.Factory
}

// New returns an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{factory: element.Heap{}}
	for _, opt := range opts {
		opt(q)
	}
	list.Init(&q.head)
	return q
}

// Head returns the sentinel. Walking Next from it visits the elements front to back.
func (q *Queue) Head() *list.Node[*element.Element] {
	return &q.head
}

// Free releases every element, then the queue itself. q must not be used afterwards.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for n := q.head.Next(); n != &q.head; n = q.head.Next() {
		q.drop(n)
	}
}

// drop unlinks n and releases its element.
func (q *Queue) drop(n *list.Node[*element.Element]) {
	e := element.Of(n)
	list.Del(n)
	q.factory.Release(e)
}

// Release hands e back to the factory the queue allocates from.
// Use it for elements obtained through RemoveHead or RemoveTail.
func (q *Queue) Release(e *element.Element) {
	if q == nil {
		element.Release(e)
		return
	}
	q.factory.Release(e)
}

func (q *Queue) newElement(value string) (*element.Element, error) {
	e, err := q.factory.New(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create element %q", value)
	}
	if e == nil {
		return nil, errors.Wrapf(element.ErrAlloc, "cannot create element %q", value)
	}
	return e, nil
}

// InsertHead adds a copy of value at the front of the queue.
func (q *Queue) InsertHead(value string) error {
	if q == nil {
		return ErrNilQueue
	}
	e, err := q.newElement(value)
	if err != nil {
		return err
	}
	list.AddHead(&q.head, &e.Link)
	return nil
}

// InsertTail adds a copy of value at the back of the queue.
func (q *Queue) InsertTail(value string) error {
	if q == nil {
		return ErrNilQueue
	}
	e, err := q.newElement(value)
	if err != nil {
		return err
	}
	list.AddTail(&q.head, &e.Link)
	return nil
}

// RemoveHead unlinks the first element and copies its value into buf (see
// element.CopyTo). The caller owns the returned element.
func (q *Queue) RemoveHead(buf []byte) (*element.Element, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if list.Empty(&q.head) {
		return nil, ErrEmptyQueue
	}
	return q.remove(q.head.Next(), buf), nil
}

// RemoveTail unlinks the last element and copies its value into buf (see
// element.CopyTo). The caller owns the returned element.
func (q *Queue) RemoveTail(buf []byte) (*element.Element, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if list.Empty(&q.head) {
		return nil, ErrEmptyQueue
	}
	return q.remove(q.head.Prev(), buf), nil
}

func (q *Queue) remove(n *list.Node[*element.Element], buf []byte) *element.Element {
	e := element.Of(n)
	e.CopyTo(buf)
	list.Del(n)
	return e
}

// Size counts the elements. It returns -1 for a nil queue.
func (q *Queue) Size() int {
	if q == nil {
		return -1
	}
	return list.Len(&q.head)
}

// Values returns the values front to back.
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}
	res := make([]string, 0)
	for n := q.head.Next(); n != &q.head; n = n.Next() {
		res = append(res, element.Of(n).Value)
	}
	return res
}

// Sorted reports whether the queue is ordered non-decreasingly, or
// non-increasingly when descend is set.
func (q *Queue) Sorted(descend bool) bool {
	if q == nil {
		return false
	}
	for n := q.head.Next(); n != &q.head && n.Next() != &q.head; n = n.Next() {
		a, b := element.Of(n).Value, element.Of(n.Next()).Value
		if (!descend && a > b) || (descend && a < b) {
			return false
		}
	}
	return true
}
