// Package list implements a sentinel-anchored, circular, doubly-linked list.
// Nodes are embedded in the values they link, and the links never own what
// they point to: a list only describes an order.
package list

// Node is a link in a circular list. A sentinel is a Node with a zero Entry
// that is never removed from its own list.
type Node[T any] struct {
	prev, next *Node[T]

	// Entry points back at the value that embeds this node.
	Entry T
}

// Init self-links the node, turning it into an empty list (or a detached node).
func Init[T any](head *Node[T]) {
	head.next, head.prev = head, head
}

// Next returns the node that follows n.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node that precedes n.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Empty reports whether the list anchored at head has no data nodes.
func Empty[T any](head *Node[T]) bool {
	return head.next == head
}

// Singular reports whether the list anchored at head has exactly one data node.
func Singular[T any](head *Node[T]) bool {
	return !Empty(head) && head.next == head.prev
}

// Len walks the list anchored at head and counts its data nodes.
func Len[T any](head *Node[T]) int {
	var cnt int
	for n := head.next; n != head; n = n.next {
		cnt++
	}
	return cnt
}

func insert[T any](newNode, prev, next *Node[T]) {
	next.prev = newNode
	newNode.next, newNode.prev = next, prev
	prev.next = newNode
}

// AddHead links newNode right after head.
func AddHead[T any](head, newNode *Node[T]) {
	insert(newNode, head, head.next)
}

// AddTail links newNode right before head, i.e. at the end of the list.
func AddTail[T any](head, newNode *Node[T]) {
	insert(newNode, head.prev, head)
}

// Del unlinks existingNode from whatever list it is on and self-links it.
func Del[T any](existingNode *Node[T]) {
	prev, next := existingNode.prev, existingNode.next
	prev.next, next.prev = next, prev
	Init(existingNode)
}

// MoveHead moves existingNode to the front of the list anchored at head.
func MoveHead[T any](existingNode, head *Node[T]) {
	Del(existingNode)
	AddHead(head, existingNode)
}

// MoveTail moves existingNode to the back of the list anchored at head.
// Since head may be any node, this is also "move existingNode in front of head".
func MoveTail[T any](existingNode, head *Node[T]) {
	Del(existingNode)
	AddTail(head, existingNode)
}

// CutPosition moves the nodes from the first one of head up to and including
// entry into dst, which must be empty. head keeps the remainder. Passing
// entry == head leaves both lists untouched.
func CutPosition[T any](dst, head, entry *Node[T]) {
	if Empty(head) || entry == head {
		Init(dst)
		return
	}

	first := head.next
	rest := entry.next

	dst.next, first.prev = first, dst
	dst.prev, entry.next = entry, dst

	head.next, rest.prev = rest, head
}

func splice[T any](src, prev, next *Node[T]) {
	first, last := src.next, src.prev

	first.prev, prev.next = prev, first
	last.next, next.prev = next, last
}

// Splice moves every node of src to the front of head and empties src.
func Splice[T any](src, head *Node[T]) {
	if Empty(src) {
		return
	}
	splice(src, head, head.next)
	Init(src)
}

// SpliceTail moves every node of src to the back of head and empties src.
func SpliceTail[T any](src, head *Node[T]) {
	if Empty(src) {
		return
	}
	splice(src, head.prev, head)
	Init(src)
}

// Reverse mirrors the list anchored at head by swapping the links of every
// node, the sentinel included.
func Reverse[T any](head *Node[T]) {
	cur := head
	for {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
		if cur == head {
			return
		}
	}
}

// Valid walks the list anchored at head and reports whether every prev link is
// the inverse of the next link before it and the walk returns to head.
func Valid[T any](head *Node[T]) bool {
	if head.next == nil || head.prev == nil {
		return false
	}
	cur := head
	for {
		next := cur.next
		if next == nil || next.prev != cur {
			return false
		}
		cur = next
		if cur == head {
			return true
		}
	}
}
