package element_test

import (
	"testing"

	"github.com/kchristidis/listq/element"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/gomega"
)

func TestNew(t *testing.T) {
	g := NewGomegaWithT(t)

	e := element.New("alice")
	g.Expect(e.Value).To(Equal("alice"))
	g.Expect(element.Of(&e.Link)).To(BeIdenticalTo(e))
	g.Expect(e.Link.Next()).To(BeIdenticalTo(&e.Link))
	g.Expect(e.Link.Prev()).To(BeIdenticalTo(&e.Link))
}

func TestCopyTo(t *testing.T) {
	e := element.New("alice")

	t.Run("fits", func(t *testing.T) {
		buf := make([]byte, 8)
		require.Equal(t, 5, e.CopyTo(buf))
		require.Equal(t, "alice\x00", string(buf[:6]))
	})

	t.Run("truncated", func(t *testing.T) {
		buf := make([]byte, 4)
		require.Equal(t, 3, e.CopyTo(buf))
		require.Equal(t, "ali\x00", string(buf))
	})

	t.Run("no buffer", func(t *testing.T) {
		require.Equal(t, 0, e.CopyTo(nil))
		require.Equal(t, 0, e.CopyTo([]byte{}))
	})

	t.Run("single byte", func(t *testing.T) {
		buf := []byte{'x'}
		require.Equal(t, 0, e.CopyTo(buf))
		require.Equal(t, byte(0), buf[0])
	})
}

func TestRelease(t *testing.T) {
	g := NewGomegaWithT(t)

	e := element.New("bob")
	element.Release(e)
	g.Expect(e.Value).To(BeEmpty())
	g.Expect(element.Of(&e.Link)).To(BeNil())

	g.Expect(func() { element.Release(nil) }).NotTo(Panic())
}

func TestBudget(t *testing.T) {
	g := NewGomegaWithT(t)

	b := &element.Budget{Limit: 2}

	e1, err := b.New("a")
	require.NoError(t, err)
	_, err = b.New("b")
	require.NoError(t, err)

	_, err = b.New("c")
	g.Expect(err).To(MatchError(element.ErrAlloc))
	g.Expect(b.InUse()).To(Equal(2))

	b.Release(e1)
	g.Expect(b.InUse()).To(Equal(1))

	_, err = b.New("d")
	require.NoError(t, err)

	unlimited := &element.Budget{Limit: -1}
	for i := 0; i < 100; i++ {
		_, err := unlimited.New("x")
		require.NoError(t, err)
	}
}
