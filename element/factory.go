package element

import "errors"

// ErrAlloc is returned by a Factory that cannot produce an element.
var ErrAlloc = errors.New("element allocation failed")

// Factory creates and releases elements on behalf of a queue.
//go:generate counterfeiter . Factory
type Factory interface {
	New(value string) (*Element, error)
	Release(e *Element)
}

// Heap is the default Factory. It allocates from the Go heap and never fails.
type Heap struct{}

// New ...
func (Heap) New(value string) (*Element, error) {
	return New(value), nil
}

// Release ...
func (Heap) Release(e *Element) {
	Release(e)
}

// Budget is a Factory that fails once it has handed out Limit elements.
// A negative Limit never fails. Released elements return to the budget.
type Budget struct {
	Limit int

	inUse int
}

// New ...
func (b *Budget) New(value string) (*Element, error) {
	if b.Limit >= 0 && b.inUse >= b.Limit {
		return nil, ErrAlloc
	}
	b.inUse++
	return New(value), nil
}

// Release ...
func (b *Budget) Release(e *Element) {
	if e == nil {
		return
	}
	Release(e)
	if b.inUse > 0 {
		b.inUse--
	}
}

// InUse returns the number of elements handed out and not yet released.
func (b *Budget) InUse() int {
	return b.inUse
}
