// Package element holds the value-bearing nodes that queues link together.
package element

import (
	"github.com/kchristidis/listq/list"
)

// Element is a string value with an embedded list link.
type Element struct {
	Link  list.Node[*Element]
	Value string
}

// New returns a detached element carrying value.
func New(value string) *Element {
	e := &Element{Value: value}
	e.Link.Entry = e
	list.Init(&e.Link)
	return e
}

// Of returns the element that embeds n, or nil for a sentinel.
func Of(n *list.Node[*Element]) *Element {
	return n.Entry
}

// CopyTo copies the value into buf as a NUL-terminated string, truncating it
// so that the terminator fits. It returns the number of value bytes copied.
func (e *Element) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], e.Value)
	buf[n] = 0
	return n
}

// Release detaches e and drops its value. Releasing nil is a no-op.
func Release(e *Element) {
	if e == nil {
		return
	}
	list.Del(&e.Link)
	e.Link.Entry = nil
	e.Value = ""
}
