package iterkitcontract

import (
	"go.llib.dev/testcase"

	"go.llib.dev/iterbridge/pkg/iterkit"
)

// Subject is a freshly made iterator with the values it must produce before it is exhausted.
type Subject[T any] struct {
	Iterator iterkit.Iterator[T]
	Expected []T
}

// Iterator describes the termination rules of the synchronous iteration protocol.
func Iterator[T any](s *testcase.Spec, mk func(t *testcase.T) Subject[T]) {
	subject := testcase.Let(s, mk)

	s.Test("it produces the expected values in order, then reports exhaustion", func(t *testcase.T) {
		sub := subject.Get(t)
		for _, exp := range sub.Expected {
			got, err := sub.Iterator.Next()
			t.Must.NoError(err)
			t.Must.Equal(exp, got)
		}
		_, err := sub.Iterator.Next()
		t.Must.ErrorIs(iterkit.ErrStopIteration, err)
	})

	s.Test("exhaustion is permanent", func(t *testcase.T) {
		sub := subject.Get(t)
		_, err := iterkit.Collect(sub.Iterator)
		t.Must.NoError(err)
		for i, n := 0, t.Random.IntB(2, 7); i < n; i++ {
			_, err := sub.Iterator.Next()
			t.Must.ErrorIs(iterkit.ErrStopIteration, err)
		}
	})

	s.Test("an exhausted iterator no longer exposes references", func(t *testcase.T) {
		sub := subject.Get(t)
		_, err := iterkit.Collect(sub.Iterator)
		t.Must.NoError(err)
		tr, ok := sub.Iterator.(iterkit.Traverser)
		if !ok {
			t.Skip("iterator has no traversal hook")
		}
		var refs []any
		t.Must.NoError(tr.Traverse(func(ref any) error {
			refs = append(refs, ref)
			return nil
		}))
		t.Must.Empty(refs)
	})

	s.Test("an exhausted iterator reduces to the argumentless constructor", func(t *testcase.T) {
		sub := subject.Get(t)
		_, err := iterkit.Collect(sub.Iterator)
		t.Must.NoError(err)
		r, ok := sub.Iterator.(iterkit.Reducer)
		if !ok {
			t.Skip("iterator is not reducible")
		}
		d := r.Reduce()
		t.Must.True(d.Exhausted())
		t.Must.Nil(d.State)
	})
}
