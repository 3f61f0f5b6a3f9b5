package queue_test

import (
	"errors"
	"testing"

	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/element/elementfakes"
	"github.com/kchristidis/listq/list"
	"github.com/kchristidis/listq/queue"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/gomega"
)

func newQueue(t *testing.T, vals ...string) *queue.Queue {
	q := queue.New()
	for _, v := range vals {
		require.NoError(t, q.InsertTail(v))
	}
	return q
}

// requireIntact checks the circular invariant and that the prev chain is the
// exact reverse of the next chain.
func requireIntact(t *testing.T, q *queue.Queue) {
	t.Helper()
	head := q.Head()
	require.True(t, list.Valid(head))

	var fwd, bwd []string
	for n := head.Next(); n != head; n = n.Next() {
		fwd = append(fwd, element.Of(n).Value)
	}
	for n := head.Prev(); n != head; n = n.Prev() {
		bwd = append([]string{element.Of(n).Value}, bwd...)
	}
	require.Equal(t, fwd, bwd)
	require.Equal(t, len(fwd), q.Size())
}

func TestSize(t *testing.T) {
	g := NewGomegaWithT(t)

	var absent *queue.Queue
	g.Expect(absent.Size()).To(Equal(-1))

	q := queue.New()
	g.Expect(q.Size()).To(Equal(0))

	require.NoError(t, q.InsertTail("a"))
	g.Expect(q.Size()).To(Equal(1))
}

func TestInsert(t *testing.T) {
	g := NewGomegaWithT(t)

	q := queue.New()
	require.NoError(t, q.InsertHead("b"))
	require.NoError(t, q.InsertHead("a"))
	require.NoError(t, q.InsertTail("c"))
	g.Expect(q.Values()).To(Equal([]string{"a", "b", "c"}))
	requireIntact(t, q)

	var absent *queue.Queue
	g.Expect(absent.InsertHead("x")).To(MatchError(queue.ErrNilQueue))
	g.Expect(absent.InsertTail("x")).To(MatchError(queue.ErrNilQueue))
}

func TestInsertAllocationFailure(t *testing.T) {
	t.Run("factory error", func(t *testing.T) {
		g := NewGomegaWithT(t)

		factory := new(elementfakes.FakeFactory)
		factory.NewReturnsOnCall(0, element.New("a"), nil)
		factory.NewReturnsOnCall(1, nil, errors.New("out of memory"))

		q := queue.New(queue.WithFactory(factory))
		require.NoError(t, q.InsertTail("a"))

		err := q.InsertHead("b")
		g.Expect(err).To(HaveOccurred())
		g.Expect(err.Error()).To(ContainSubstring("out of memory"))
		g.Expect(factory.NewCallCount()).To(Equal(2))
		g.Expect(factory.NewArgsForCall(1)).To(Equal("b"))

		g.Expect(q.Values()).To(Equal([]string{"a"}))
		requireIntact(t, q)
	})

	t.Run("nil element", func(t *testing.T) {
		g := NewGomegaWithT(t)

		factory := new(elementfakes.FakeFactory)
		q := queue.New(queue.WithFactory(factory))

		err := q.InsertTail("a")
		g.Expect(err).To(HaveOccurred())
		g.Expect(q.Size()).To(Equal(0))
		requireIntact(t, q)
	})

	t.Run("budget", func(t *testing.T) {
		g := NewGomegaWithT(t)

		budget := &element.Budget{Limit: 1}
		q := queue.New(queue.WithFactory(budget))
		require.NoError(t, q.InsertTail("a"))
		g.Expect(q.InsertTail("b")).NotTo(Succeed())
		g.Expect(q.Values()).To(Equal([]string{"a"}))

		q.Free()
		g.Expect(budget.InUse()).To(Equal(0))
	})
}

func TestRemove(t *testing.T) {
	g := NewGomegaWithT(t)

	q := newQueue(t, "alice", "bob", "carl")
	buf := make([]byte, 4)

	e, err := q.RemoveHead(buf)
	require.NoError(t, err)
	g.Expect(e.Value).To(Equal("alice"))
	g.Expect(string(buf)).To(Equal("ali\x00"))
	q.Release(e)

	e, err = q.RemoveTail(nil)
	require.NoError(t, err)
	g.Expect(e.Value).To(Equal("carl"))
	q.Release(e)

	g.Expect(q.Values()).To(Equal([]string{"bob"}))
	requireIntact(t, q)

	e, err = q.RemoveTail(buf)
	require.NoError(t, err)
	g.Expect(e.Value).To(Equal("bob"))

	_, err = q.RemoveHead(buf)
	g.Expect(err).To(MatchError(queue.ErrEmptyQueue))
	_, err = q.RemoveTail(buf)
	g.Expect(err).To(MatchError(queue.ErrEmptyQueue))

	var absent *queue.Queue
	_, err = absent.RemoveHead(buf)
	g.Expect(err).To(MatchError(queue.ErrNilQueue))
	_, err = absent.RemoveTail(buf)
	g.Expect(err).To(MatchError(queue.ErrNilQueue))
}

func TestFree(t *testing.T) {
	g := NewGomegaWithT(t)

	factory := new(elementfakes.FakeFactory)
	factory.NewStub = func(v string) (*element.Element, error) {
		return element.New(v), nil
	}

	q := queue.New(queue.WithFactory(factory))
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, q.InsertTail(v))
	}

	q.Free()
	g.Expect(factory.ReleaseCallCount()).To(Equal(3))
	g.Expect(factory.ReleaseArgsForCall(0).Value).To(Equal("a"))
	g.Expect(q.Size()).To(Equal(0))

	var absent *queue.Queue
	g.Expect(func() { absent.Free() }).NotTo(Panic())
}

func TestSorted(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(newQueue(t).Sorted(false)).To(BeTrue())
	g.Expect(newQueue(t, "a", "b", "b").Sorted(false)).To(BeTrue())
	g.Expect(newQueue(t, "a", "b", "b").Sorted(true)).To(BeFalse())
	g.Expect(newQueue(t, "c", "b", "b").Sorted(true)).To(BeTrue())

	var absent *queue.Queue
	g.Expect(absent.Sorted(false)).To(BeFalse())
}
