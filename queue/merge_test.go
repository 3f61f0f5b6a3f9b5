package queue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/queue"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/gomega"
)

func randomValues(r *rand.Rand, n int) []string {
	res := make([]string, n)
	for i := range res {
		b := make([]byte, 1+r.Intn(3))
		for j := range b {
			b[j] = byte('a' + r.Intn(4))
		}
		res[i] = string(b)
	}
	return res
}

func sortedCopy(vals []string, descend bool) []string {
	res := append([]string{}, vals...)
	if descend {
		sort.Sort(sort.Reverse(sort.StringSlice(res)))
	} else {
		sort.Strings(res)
	}
	return res
}

func TestMerge(t *testing.T) {
	t.Run("example", func(t *testing.T) {
		g := NewGomegaWithT(t)

		q1 := newQueue(t, "bob", "alice", "carl")
		q1.Sort(false)
		g.Expect(q1.Values()).To(Equal([]string{"alice", "bob", "carl"}))

		q2 := newQueue(t, "dave", "eve")

		n, err := q1.Merge(q2, false)
		require.NoError(t, err)
		g.Expect(n).To(Equal(5))
		g.Expect(q1.Values()).To(Equal([]string{"alice", "bob", "carl", "dave", "eve"}))
		g.Expect(q2.Size()).To(Equal(0))
		requireIntact(t, q1)
		requireIntact(t, q2)
	})

	t.Run("interleaved", func(t *testing.T) {
		q1 := newQueue(t, "a", "c", "e")
		q2 := newQueue(t, "b", "d", "f", "g")

		n, err := q1.Merge(q2, false)
		require.NoError(t, err)
		require.Equal(t, 7, n)
		require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, q1.Values())
	})

	t.Run("descending", func(t *testing.T) {
		q1 := newQueue(t, "e", "c", "a")
		q2 := newQueue(t, "f", "d", "b")

		n, err := q1.Merge(q2, true)
		require.NoError(t, err)
		require.Equal(t, 6, n)
		require.Equal(t, []string{"f", "e", "d", "c", "b", "a"}, q1.Values())
	})

	t.Run("into empty", func(t *testing.T) {
		q1 := queue.New()
		q2 := newQueue(t, "a", "b")

		n, err := q1.Merge(q2, false)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []string{"a", "b"}, q1.Values())
		requireIntact(t, q1)
	})

	t.Run("from empty", func(t *testing.T) {
		q1 := newQueue(t, "a", "b")

		n, err := q1.Merge(queue.New(), false)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []string{"a", "b"}, q1.Values())
	})

	t.Run("absent", func(t *testing.T) {
		var absent *queue.Queue

		n, err := absent.Merge(queue.New(), false)
		require.Equal(t, queue.ErrNilQueue, err)
		require.Equal(t, -1, n)

		_, err = queue.New().Merge(absent, false)
		require.Equal(t, queue.ErrNilQueue, err)
	})

	t.Run("with itself", func(t *testing.T) {
		q := newQueue(t, "a", "b")
		n, err := q.Merge(q, false)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		requireIntact(t, q)
	})
}

func TestMergeKeepsDestinationAheadOnTies(t *testing.T) {
	g := NewGomegaWithT(t)

	q1 := newQueue(t, "a", "b", "b", "c")
	q2 := newQueue(t, "b", "b")

	var fromSrc []*element.Element
	for n := q2.Head().Next(); n != q2.Head(); n = n.Next() {
		fromSrc = append(fromSrc, element.Of(n))
	}

	_, err := q1.Merge(q2, false)
	require.NoError(t, err)

	// Positions 3 and 4 belong to the src elements, in their original order.
	n := q1.Head().Next().Next().Next().Next()
	g.Expect(element.Of(n)).To(BeIdenticalTo(fromSrc[0]))
	g.Expect(element.Of(n.Next())).To(BeIdenticalTo(fromSrc[1]))
}

func TestMergeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		descend := i%2 == 1
		a := sortedCopy(randomValues(r, r.Intn(20)), descend)
		b := sortedCopy(randomValues(r, r.Intn(20)), descend)

		q1, q2 := newQueue(t, a...), newQueue(t, b...)
		n, err := q1.Merge(q2, descend)
		require.NoError(t, err)

		require.Equal(t, len(a)+len(b), n)
		require.Equal(t, sortedCopy(append(append([]string{}, a...), b...), descend), q1.Values())
		require.Equal(t, 0, q2.Size())
		requireIntact(t, q1)
		requireIntact(t, q2)
	}
}
