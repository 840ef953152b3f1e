package iterkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterbridge/pkg/iterkit"
	"go.llib.dev/iterbridge/pkg/iterkit/iterkitcontract"
)

func TestSequenceIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		seq  = testcase.Var[iterkit.Sequence[int]]{ID: "sequence"}
		opts = testcase.LetValue[[]iterkit.Option[int]](s, nil)
	)
	subject := testcase.Let(s, func(t *testcase.T) *iterkit.SequenceIterator[int] {
		return iterkit.NewSequenceIterator[int](seq.Get(t), opts.Get(t)...)
	})

	s.When("the sequence holds values", func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] { return iterkit.List[int]{10, 20} })

		s.Then("values are produced in index order, then the iterator stops", func(t *testcase.T) {
			v, err := subject.Get(t).Next()
			t.Must.NoError(err)
			t.Must.Equal(10, v)

			v, err = subject.Get(t).Next()
			t.Must.NoError(err)
			t.Must.Equal(20, v)

			_, err = subject.Get(t).Next()
			t.Must.ErrorIs(iterkit.ErrStopIteration, err)
			t.Must.True(subject.Get(t).Exhausted())
		})

		s.Then("the length hint counts down with the cursor", func(t *testcase.T) {
			it := subject.Get(t)
			n, ok := it.LengthHint()
			t.Must.True(ok)
			t.Must.Equal(2, n)

			_, err := it.Next()
			t.Must.NoError(err)
			n, ok = it.LengthHint()
			t.Must.True(ok)
			t.Must.Equal(1, n)

			_, err = iterkit.Collect[int](it)
			t.Must.NoError(err)
			n, ok = it.LengthHint()
			t.Must.True(ok)
			t.Must.Equal(0, n)
		})

		s.Then("it reduces to the sequence and the cursor", func(t *testcase.T) {
			it := subject.Get(t)
			_, err := it.Next()
			t.Must.NoError(err)

			d := it.Reduce()
			t.Must.Equal(iterkit.ConstructorIter, d.Constructor)
			t.Must.Equal(1, len(d.Args))
			t.Must.Equal(1, d.State)
		})

		s.Then("a restored iterator continues from the recorded cursor", func(t *testcase.T) {
			it := subject.Get(t)
			_, err := it.Next()
			t.Must.NoError(err)

			restored, err := iterkit.FromDescriptor[int](it.Reduce())
			t.Must.NoError(err)
			vs, err := iterkit.Collect(restored)
			t.Must.NoError(err)
			t.Must.Equal([]int{20}, vs)
		})

		s.Then("the traversal visits the sequence", func(t *testcase.T) {
			var refs []any
			t.Must.NoError(subject.Get(t).Traverse(func(ref any) error {
				refs = append(refs, ref)
				return nil
			}))
			t.Must.Equal(1, len(refs))
		})

		s.And("the overflow ceiling is reached before the sequence ends", func(s *testcase.Spec) {
			opts.Let(s, func(t *testcase.T) []iterkit.Option[int] {
				return []iterkit.Option[int]{iterkit.WithMaxIndex[int](1)}
			})

			s.Then("the step past the ceiling fails with overflow, and the iterator stays active", func(t *testcase.T) {
				it := subject.Get(t)
				v, err := it.Next()
				t.Must.NoError(err)
				t.Must.Equal(10, v)

				_, err = it.Next()
				t.Must.ErrorIs(iterkit.ErrOverflow, err)
				t.Must.False(it.Exhausted())

				_, err = it.Next()
				t.Must.ErrorIs(iterkit.ErrOverflow, err)
			})

			s.Then("a cursor restored past the ceiling still fails with overflow", func(t *testcase.T) {
				it := subject.Get(t)
				it.SetState(t.Random.IntBetween(2, 42))

				_, err := it.Next()
				t.Must.ErrorIs(iterkit.ErrOverflow, err)
				t.Must.False(it.Exhausted())
			})
		})
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] { return iterkit.List[int]{} })

		s.Then("the first step stops", func(t *testcase.T) {
			_, err := subject.Get(t).Next()
			t.Must.ErrorIs(iterkit.ErrStopIteration, err)
		})
	})

	s.When("the sequence reports its own end with a stop signal", func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] {
			return iterkit.SequenceFunc[int](func(index int) (int, error) {
				if index < 3 {
					return index * index, nil
				}
				return 0, iterkit.ErrStopIteration
			})
		})

		s.Then("it is treated as the end of the sequence", func(t *testcase.T) {
			vs, err := iterkit.Collect[int](subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal([]int{0, 1, 4}, vs)
			t.Must.True(subject.Get(t).Exhausted())
		})

		s.Then("the length hint is unsupported while active", func(t *testcase.T) {
			_, ok := subject.Get(t).LengthHint()
			t.Must.False(ok)
		})
	})

	s.When("the sequence fails with an unrelated error", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		calls := testcase.LetValue(s, 0)
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] {
			return iterkit.SequenceFunc[int](func(index int) (int, error) {
				calls.Set(t, calls.Get(t)+1)
				if calls.Get(t) == 1 {
					return 0, expErr.Get(t)
				}
				return index, nil
			})
		})

		s.Then("the error is returned and the cursor does not move", func(t *testcase.T) {
			it := subject.Get(t)
			_, err := it.Next()
			t.Must.ErrorIs(expErr.Get(t), err)
			t.Must.False(it.Exhausted())

			v, err := it.Next()
			t.Must.NoError(err)
			t.Must.Equal(0, v)
		})
	})

	s.When("the size query fails", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] {
			return brokenSizer{err: expErr.Get(t)}
		})

		s.Then("LengthHint reports it as unsupported", func(t *testcase.T) {
			_, ok := subject.Get(t).LengthHint()
			t.Must.False(ok)
		})

		s.Then("LengthHintE propagates the error", func(t *testcase.T) {
			_, _, err := subject.Get(t).LengthHintE()
			t.Must.ErrorIs(expErr.Get(t), err)
		})
	})

	s.Describe("SetState", func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) iterkit.Sequence[int] { return iterkit.List[int]{1, 2, 3, 4} })

		s.Test("a negative cursor is clamped to zero", func(t *testcase.T) {
			it := subject.Get(t)
			it.SetState(-1 * t.Random.IntBetween(1, 42))
			v, err := it.Next()
			t.Must.NoError(err)
			t.Must.Equal(1, v)
		})

		s.Test("the cursor is moved forward", func(t *testcase.T) {
			it := subject.Get(t)
			it.SetState(2)
			vs, err := iterkit.Collect[int](it)
			t.Must.NoError(err)
			t.Must.Equal([]int{3, 4}, vs)
		})

		s.Test("it has no effect on an exhausted iterator", func(t *testcase.T) {
			it := subject.Get(t)
			_, err := iterkit.Collect[int](it)
			t.Must.NoError(err)
			it.SetState(0)
			_, err = it.Next()
			t.Must.ErrorIs(iterkit.ErrStopIteration, err)
		})
	})
}

func TestSequenceIterator_contract(t *testing.T) {
	s := testcase.NewSpec(t)
	iterkitcontract.Iterator[string](s, func(t *testcase.T) iterkitcontract.Subject[string] {
		vs := make([]string, t.Random.IntBetween(0, 7))
		for i := range vs {
			vs[i] = t.Random.String()
		}
		return iterkitcontract.Subject[string]{
			Iterator: iterkit.NewSequenceIterator[string](iterkit.List[string](vs)),
			Expected: vs,
		}
	})
}

func TestFromDescriptor(t *testing.T) {
	t.Run("argumentless descriptor yields an exhausted iterator", func(t *testing.T) {
		it, err := iterkit.FromDescriptor[int](iterkit.Descriptor{Constructor: iterkit.ConstructorIter})
		assert.NoError(t, err)
		_, err = it.Next()
		assert.ErrorIs(t, iterkit.ErrStopIteration, err)
	})

	t.Run("state is clamped on restore", func(t *testing.T) {
		it, err := iterkit.FromDescriptor[int](iterkit.Descriptor{
			Constructor: iterkit.ConstructorIter,
			Args:        []any{iterkit.List[int]{7, 8}},
			State:       -3,
		})
		assert.NoError(t, err)
		vs, err := iterkit.Collect(it)
		assert.NoError(t, err)
		assert.Equal(t, []int{7, 8}, vs)
	})

	t.Run("a float state, as decoded from JSON, is accepted", func(t *testing.T) {
		it, err := iterkit.FromDescriptor[int](iterkit.Descriptor{
			Constructor: iterkit.ConstructorIter,
			Args:        []any{iterkit.List[int]{7, 8}},
			State:       float64(1),
		})
		assert.NoError(t, err)
		vs, err := iterkit.Collect(it)
		assert.NoError(t, err)
		assert.Equal(t, []int{8}, vs)
	})

	t.Run("callable descriptor", func(t *testing.T) {
		var n int
		it, err := iterkit.FromDescriptor[int](iterkit.Descriptor{
			Constructor: iterkit.ConstructorIter,
			Args: []any{func() (int, error) {
				n++
				return n, nil
			}, 3},
		})
		assert.NoError(t, err)
		vs, err := iterkit.Collect(it)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, vs)
	})

	t.Run("invalid descriptors", func(t *testing.T) {
		for name, d := range map[string]iterkit.Descriptor{
			"unknown constructor": {Constructor: "list"},
			"not a sequence":      {Constructor: iterkit.ConstructorIter, Args: []any{42}},
			"not a producer":      {Constructor: iterkit.ConstructorIter, Args: []any{42, 42}},
			"sentinel type":       {Constructor: iterkit.ConstructorIter, Args: []any{func() (int, error) { return 0, nil }, "x"}},
			"too many arguments":  {Constructor: iterkit.ConstructorIter, Args: []any{1, 2, 3}},
			"state type":          {Constructor: iterkit.ConstructorIter, Args: []any{iterkit.List[int]{}}, State: "1"},
		} {
			_, err := iterkit.FromDescriptor[int](d)
			assert.ErrorIs(t, iterkit.ErrInvalidDescriptor, err, assert.Message(name))
		}
	})
}

type brokenSizer struct{ err error }

func (b brokenSizer) At(index int) (int, error) { return index, nil }
func (b brokenSizer) Len() (int, error)         { return 0, b.err }
