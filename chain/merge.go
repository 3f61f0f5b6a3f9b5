package chain

import "github.com/kchristidis/listq/list"

// MergeAll merges every queue in the chain into the first one, in chain
// order, and returns the total number of elements. The other queues end up
// empty but are not freed. Every queue must already be sorted in the
// direction given by descend. Contexts without a queue are skipped.
//
// Each step is a two-way merge into a growing accumulator, so the total cost
// is O(n·k) for k queues holding n elements.
func MergeAll(c *Chain, descend bool) int {
	if c == nil || list.Empty(&c.head) {
		return 0
	}

	first := c.First()
	if list.Singular(&c.head) {
		return first.Q.Size()
	}

	total := first.Q.Size()
	if total < 0 {
		return 0
	}
	for n := first.link.Next(); n != &c.head; n = n.Next() {
		cnt, err := first.Q.Merge(n.Entry.Q, descend)
		if err != nil {
			continue
		}
		total = cnt
	}
	return total
}
