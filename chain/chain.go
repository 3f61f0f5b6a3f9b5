// Package chain links queues together so they can be merged into one.
package chain

import (
	"github.com/kchristidis/listq/list"
	"github.com/kchristidis/listq/queue"
)

// Context associates a queue with its place in a chain. It does not own the
// queue: dropping a context never frees Q.
type Context struct {
	Q  *queue.Queue
	ID int

	link list.Node[*Context]
}

// Chain is an ordered, sentinel-anchored list of contexts.
type Chain struct {
	head   list.Node[*Context]
	nextID int
}

// New returns an empty chain.
func New() *Chain {
	c := new(Chain)
	list.Init(&c.head)
	return c
}

// Add appends a context for q and returns it.
func (c *Chain) Add(q *queue.Queue) *Context {
	ctx := &Context{Q: q, ID: c.nextID}
	ctx.link.Entry = ctx
	c.nextID++
	list.AddTail(&c.head, &ctx.link)
	return ctx
}

// Remove unlinks ctx from the chain. Its queue is left alone.
func (c *Chain) Remove(ctx *Context) {
	if ctx == nil {
		return
	}
	list.Del(&ctx.link)
}

// Len returns the number of contexts.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return list.Len(&c.head)
}

// First returns the first context, or nil for an empty chain.
func (c *Chain) First() *Context {
	if c == nil || list.Empty(&c.head) {
		return nil
	}
	return c.head.Next().Entry
}

// Next returns the context after ctx, wrapping around to the first one.
func (c *Chain) Next(ctx *Context) *Context {
	n := ctx.link.Next()
	if n == &c.head {
		n = n.Next()
	}
	return n.Entry
}

// Prev returns the context before ctx, wrapping around to the last one.
func (c *Chain) Prev(ctx *Context) *Context {
	n := ctx.link.Prev()
	if n == &c.head {
		n = n.Prev()
	}
	return n.Entry
}

// Contexts returns the contexts in chain order.
func (c *Chain) Contexts() []*Context {
	if c == nil {
		return nil
	}
	var res []*Context
	for n := c.head.Next(); n != &c.head; n = n.Next() {
		res = append(res, n.Entry)
	}
	return res
}
